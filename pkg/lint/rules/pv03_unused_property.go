package rules

import (
	"fmt"

	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "PV03",
		Name:        "unused-property",
		Group:       "coverage",
		Description: "Every catalogued property must belong to at least one property set",
		Severity:    lint.SeverityError,
		Check:       checkUnusedProperty,

		Rationale: `A property that belongs to no set cannot be looked up through the props-by-set table
and is missing from the set reference documentation.`,

		Fix: "Add the property to the sets that carry it, or remove the stale catalog entry.",
	})
}

// checkUnusedProperty reports each metadata entry that no set references.
func checkUnusedProperty(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for _, prop := range ctx.Catalog.PropertyNames() {
		if ctx.Catalog.IsUsed(prop) {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Prop %s not used in any prop set in YML file", prop),
			Property: prop,
		})
	}

	return diagnostics
}
