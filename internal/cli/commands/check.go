package commands

import (
	"fmt"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/output"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Strict  bool     // Fail when errors are reported
	Disable []string // Rule IDs to disable
}

// ErrValidationFailed is returned by check --strict when errors were reported.
var ErrValidationFailed = fmt.Errorf("property validation failed")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check headers, catalog metadata and property sets",
		Long: `Scan the include directory for property #defines and check them
against the property catalog.

Every problem is logged. By default the command succeeds even when problems
are found; use --strict to fail instead.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the catalog
  ofxprops check

  # Fail on any error (for CI)
  ofxprops check --strict

  # Skip the unused property check
  ofxprops check --disable PV03`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit nonzero when errors are found")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintCfg, err := cfg.LintRules()
	if err != nil {
		return err
	}
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.ToUpper(strings.TrimSpace(id)))
	}

	defined, err := cmdCtx.Engine.Scan()
	if err != nil {
		return err
	}
	cat, err := cmdCtx.Engine.Load()
	if err != nil {
		return err
	}

	analyzer := lint.NewAnalyzer(lintCfg, cmdCtx.Logger)
	report := &lint.Report{}
	lintCtx := lint.NewContext(cat, defined)
	for _, rule := range lint.GetAll() {
		if lintCfg.IsDisabled(rule.ID) {
			continue
		}
		if cfg.Verbose && r.EffectiveMode() != output.ModeJSON {
			r.Println("")
			r.Println("=== Checking " + rule.Description)
		}
		res := analyzer.Run(rule, lintCtx)
		report.Results = append(report.Results, res)
		if cfg.Verbose && r.EffectiveMode() != output.ModeJSON && res.Errors() == 0 {
			r.Println(" ✔️ ALL OK")
		}
	}

	renderCheckReport(r, report)

	if opts.Strict && report.ErrorCount() > 0 {
		return fmt.Errorf("%w: %d errors", ErrValidationFailed, report.ErrorCount())
	}
	return nil
}

// CheckJSONOutput is the JSON output structure for check.
type CheckJSONOutput struct {
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
	Summary     struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
}

// CheckDiagnostic is one reported problem.
type CheckDiagnostic struct {
	RuleID      string   `json:"rule_id"`
	Severity    string   `json:"severity"`
	Message     string   `json:"message"`
	Property    string   `json:"property,omitempty"`
	Set         string   `json:"set,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func renderCheckReport(r *output.Renderer, report *lint.Report) {
	errors := report.ErrorCount()
	warnings := report.Count(lint.SeverityWarning)

	if r.EffectiveMode() == output.ModeJSON {
		out := CheckJSONOutput{Diagnostics: []CheckDiagnostic{}}
		for _, d := range report.Diagnostics() {
			out.Diagnostics = append(out.Diagnostics, CheckDiagnostic{
				RuleID:      d.RuleID,
				Severity:    d.Severity.String(),
				Message:     d.Message,
				Property:    d.Property,
				Set:         d.Set,
				Suggestions: d.Suggestions,
			})
		}
		out.Summary.Errors = errors
		out.Summary.Warnings = warnings
		_ = r.JSON(out)
		return
	}

	r.Println("")
	if errors == 0 && warnings == 0 {
		r.Success("No property problems found")
		return
	}
	summary := fmt.Sprintf("Summary: %d errors, %d warnings", errors, warnings)
	if errors > 0 {
		r.Error(summary)
	} else {
		r.Warning(summary)
	}
}
