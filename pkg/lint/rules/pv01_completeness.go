package rules

import (
	"fmt"

	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "PV01",
		Name:        "catalog-completeness",
		Group:       "completeness",
		Description: "Catalog and source headers must define the same properties",
		Severity:    lint.SeverityError,
		Check:       checkCompleteness,

		Rationale: `The generated metadata table is compiled against the C headers. A property defined in
a header but missing from ofx-props.yml gets no metadata record, and a catalog entry with no
#define produces a header that does not compile.`,

		Fix: "Add the missing property to ofx-props.yml, or fix the spelling of the catalog entry to match its #define.",
	})
}

// checkCompleteness compares the scanned names with the metadata table in
// both directions. Near-miss names are attached as suggestions to catalog
// entries that have no definition.
func checkCompleteness(ctx *lint.Context) []lint.Diagnostic {
	if !ctx.HasSources() {
		return nil
	}

	var diagnostics []lint.Diagnostic
	defined := ctx.Defined.Sorted()

	for _, name := range defined {
		if _, ok := ctx.Catalog.Property(name); !ok {
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("No YAML metadata found for %s", name),
				Property: name,
			})
		}
	}

	maxSuggestions := lint.GetIntOption(ctx.Options, "max_suggestions", lint.DefaultMaxSuggestions)
	cutoff := lint.GetFloatOption(ctx.Options, "cutoff", lint.DefaultCutoff)

	for _, name := range ctx.Catalog.PropertyNames() {
		if ctx.Defined.Has(name) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity:    lint.SeverityError,
			Message:     fmt.Sprintf("No prop definition found for '%s' in source/include", name),
			Property:    name,
			Suggestions: lint.CloseMatches(name, defined, maxSuggestions, cutoff),
		})
	}

	return diagnostics
}
