// Package lint cross-validates a property catalog against the property names
// discovered in the OpenFX sources.
//
// # Rule Registration
//
// Rules register themselves from init() functions when their package is
// imported:
//
//	import _ "github.com/AcademySoftwareFoundation/openfx/pkg/lint/rules"
//
// # Rule Categories
//
//   - completeness: catalog and headers agree on the set of properties
//   - coverage: sets reference known properties, properties are used by sets
//   - docs: documentation inputs such as action arguments are resolvable
//
// # Running
//
//	analyzer := lint.NewAnalyzer(lint.NewConfig(), logger)
//	report := analyzer.Analyze(lint.NewContext(cat, names))
//	fmt.Println(report.ErrorCount())
//
// Every finding is logged at the level of its severity. Nothing short-circuits:
// all enabled rules always run, and the caller decides what an error count
// means.
package lint
