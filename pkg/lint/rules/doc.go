// Package rules registers the catalog validation rules.
//
// Import for side effects:
//
//	import _ "github.com/AcademySoftwareFoundation/openfx/pkg/lint/rules"
//
// Rules:
//   - PV01 catalog-completeness: headers and catalog list the same properties
//   - PV02 set-metadata: every set member has metadata
//   - PV03 unused-property: every catalogued property is used by a set
//   - PV04 action-metadata: every action argument has metadata
package rules
