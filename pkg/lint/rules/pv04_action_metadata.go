package rules

import (
	"fmt"

	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "PV04",
		Name:        "action-metadata",
		Group:       "docs",
		Description: "Action arguments should have metadata",
		Severity:    lint.SeverityWarning,
		Check:       checkActionMetadata,

		Rationale: `Action arguments are documented with their type and dimension. An argument without
metadata is rendered as "No metadata available" in the set reference.`,

		Fix: "Add metadata for the argument under 'properties', or correct its name in the action.",
	})
}

func checkActionMetadata(ctx *lint.Context) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for _, name := range ctx.Catalog.ActionNames() {
		action := ctx.Catalog.Actions[name]
		for _, args := range []struct {
			kind  string
			names []string
		}{
			{"inArgs", action.InArgs},
			{"outArgs", action.OutArgs},
		} {
			for _, prop := range args.names {
				if _, ok := ctx.Catalog.Property(prop); ok {
					continue
				}
				diagnostics = append(diagnostics, lint.Diagnostic{
					Severity: lint.SeverityWarning,
					Message:  fmt.Sprintf("No props metadata found for action %s %s %s", name, args.kind, prop),
					Property: prop,
					Set:      name,
				})
			}
		}
	}

	return diagnostics
}
