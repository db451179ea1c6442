package rules

import (
	"fmt"
	"sort"

	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "PV02",
		Name:        "set-metadata",
		Group:       "coverage",
		Description: "Every property-set member must have metadata",
		Severity:    lint.SeverityError,
		Check:       checkSetMetadata,

		Rationale: `Property sets are emitted into the props-by-set header and the set reference. A member
without metadata is usually a typo or a property that was renamed in one place only.`,

		Fix: "Add metadata for the property under 'properties', or correct the member name in the set.",
	})
}

// checkSetMetadata reports set members that have no metadata entry, in set
// order then member order, both sorted.
func checkSetMetadata(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for _, setName := range ctx.Catalog.SetNames() {
		members := ctx.Catalog.Sets[setName].Names()
		sort.Strings(members)
		for _, prop := range members {
			if _, ok := ctx.Catalog.Property(prop); ok {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("No props metadata found for %s.%s", setName, prop),
				Property: prop,
				Set:      setName,
			})
		}
	}

	return diagnostics
}
