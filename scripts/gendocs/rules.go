package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/pkg/emit"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	_ "github.com/AcademySoftwareFoundation/openfx/pkg/lint/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"completeness": "Rules that match the header #defines against the catalog.",
	"coverage":     "Rules about how properties are used by property sets.",
	"docs":         "Rules about metadata needed by the generated documentation.",
}

// generateRulesDocs writes the validation rules page.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rules docs to %s", outDir)

	rules := lint.GetAll()
	grouped := make(map[string][]lint.RuleDef)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	w := emit.NewRSTWriter()
	w.Label("ofxpropsRules")
	w.Title("ofxprops Validation Rules", '=')
	w.Paragraph(fmt.Sprintf("%s checks the property catalog with %d rules.",
		emit.Literal("ofxprops check"), len(rules)))

	w.Title("Configuration", '-')
	w.Paragraph("Rules can be configured in " + emit.Literal("ofxprops.yaml") + ":")
	w.CodeBlock("yaml", `lint:
  disabled: [PV03]          # skip a rule
  severity:
    PV04: error             # override severity
  rules:
    PV01:
      max_suggestions: 1    # rule-specific option`)

	title := cases.Title(language.Und)
	for _, g := range groups {
		w.Title(title.String(g), '-')
		if desc, ok := groupDescriptions[g]; ok {
			w.Paragraph(desc)
		}
		for _, r := range grouped[g] {
			writeRule(w, r)
		}
	}

	return writeDoc(outDir, "rules.rst", w)
}

func writeRule(w *emit.RSTWriter, rule lint.RuleDef) {
	w.Label("rule_" + rule.ID)
	w.Title(fmt.Sprintf("%s - %s", rule.ID, rule.Name), '^')
	w.Field("Severity", emit.Literal(rule.Severity.String()))
	w.Blank()
	w.Paragraph(strings.TrimSpace(rule.Description))

	if rule.Rationale != "" {
		w.Paragraph(emit.Bold("Why This Matters"))
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}
	if rule.Fix != "" {
		w.Paragraph(emit.Bold("How to Fix"))
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}
}
