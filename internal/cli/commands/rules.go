package commands

import (
	"fmt"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/output"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available validation rules",
		Long: `List all available catalog validation rules with their documentation.

Rules are organized by group (completeness, coverage, docs).
Use --verbose to see the rationale and fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  ofxprops rules

  # Show details for a specific rule
  ofxprops rules PV01

  # List rules in the coverage group
  ofxprops rules --group coverage`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")

	return cmd
}

var groupTitle = cases.Title(language.Und)

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	rules := lint.GetAll()
	if opts.Group != "" {
		rules = lint.GetByGroup(opts.Group)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: rulesJSON(rules), Count: len(rules)})
	case output.ModeMarkdown:
		listRulesMarkdown(r, rules, opts.Verbose)
	default:
		listRulesText(r, rules, opts.Verbose)
	}
	return nil
}

// groupRules orders rules by group, keeping ID order within a group.
func groupRules(rules []lint.RuleDef) ([]string, map[string][]lint.RuleDef) {
	var groups []string
	byGroup := make(map[string][]lint.RuleDef)
	for _, rule := range rules {
		if _, ok := byGroup[rule.Group]; !ok {
			groups = append(groups, rule.Group)
		}
		byGroup[rule.Group] = append(byGroup[rule.Group], rule)
	}
	return groups, byGroup
}

// listRulesText outputs rules in styled text format.
func listRulesText(r *output.Renderer, rules []lint.RuleDef, verbose bool) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Validation Rules (%d)", len(rules))))
	r.Println("")

	groups, byGroup := groupRules(rules)
	for _, group := range groups {
		r.Println(styles.Bold.Render("  " + groupTitle.String(group)))
		for _, rule := range byGroup[group] {
			r.Printf("    %s  %s - %s\n",
				styles.Muted.Render(rule.ID),
				rule.Name,
				getSeverityStyle(styles, rule.Severity).Render(rule.Severity.String()),
			)
			if verbose {
				r.Println(styles.Muted.Render("        " + rule.Description))
				if rule.Rationale != "" {
					r.Println(styles.Muted.Render("        Why: " + truncateOneLine(rule.Rationale, 80)))
				}
				r.Println("")
			}
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'ofxprops rules <rule-id>' for detailed documentation"))
	r.Println("")
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleDef, verbose bool) {
	r.Println("# Validation Rules")
	r.Println("")

	groups, byGroup := groupRules(rules)
	for _, group := range groups {
		r.Println("## " + groupTitle.String(group))
		r.Println("")
		for _, rule := range byGroup[group] {
			r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.Severity.String())
			if verbose {
				r.Println("  " + rule.Description)
				if rule.Rationale != "" {
					r.Println("  > " + truncateOneLine(rule.Rationale, 200))
				}
			}
		}
		r.Println("")
	}
}

// RuleJSON is the JSON form of a rule.
type RuleJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Rationale   string `json:"rationale,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []RuleJSON `json:"rules"`
	Count int        `json:"count"`
}

func rulesJSON(rules []lint.RuleDef) []RuleJSON {
	out := make([]RuleJSON, len(rules))
	for i, rule := range rules {
		out[i] = RuleJSON{
			ID:          rule.ID,
			Name:        rule.Name,
			Group:       rule.Group,
			Description: rule.Description,
			Severity:    rule.Severity.String(),
			Rationale:   rule.Rationale,
			Fix:         rule.Fix,
		}
	}
	return out
}

func showRule(cmd *cobra.Command, ruleID string) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	rule, ok := lint.GetByID(strings.ToUpper(ruleID))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rulesJSON([]lint.RuleDef{rule})[0])
	case output.ModeMarkdown:
		showRuleMarkdown(r, rule)
	default:
		showRuleText(r, rule)
	}
	return nil
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule lint.RuleDef) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.Severity.String())
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		for _, line := range strings.Split(rule.Rationale, "\n") {
			r.Println("  " + line)
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule lint.RuleDef) {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.Severity.String())
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
