package lint

import (
	"context"
	"log/slog"
	"strings"
)

// Analyzer runs registered rules against a catalog context.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil config enables every rule; a nil
// logger discards output.
func NewAnalyzer(config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{config: config, logger: logger}
}

// Result is the outcome of one rule.
type Result struct {
	Rule        RuleDef
	Diagnostics []Diagnostic
}

// Errors returns the number of error-severity diagnostics.
func (r Result) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Report collects the results of an analysis, one per rule that ran.
type Report struct {
	Results []Result
}

// ErrorCount returns the total number of error-severity diagnostics.
func (r *Report) ErrorCount() int {
	n := 0
	for _, res := range r.Results {
		n += res.Errors()
	}
	return n
}

// Count returns the number of diagnostics with the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics() {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Diagnostics returns every diagnostic in rule order.
func (r *Report) Diagnostics() []Diagnostic {
	var all []Diagnostic
	for _, res := range r.Results {
		all = append(all, res.Diagnostics...)
	}
	return all
}

// Analyze runs every enabled rule, logs each finding and returns the report.
// Rules never stop one another.
func (a *Analyzer) Analyze(ctx *Context) *Report {
	report := &Report{}
	if ctx == nil || ctx.Catalog == nil {
		return report
	}

	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			a.logger.Debug("rule disabled", "rule", rule.ID)
			continue
		}

		report.Results = append(report.Results, a.Run(rule, ctx))
	}

	return report
}

// Run runs a single rule, enabled or not, and logs its findings.
func (a *Analyzer) Run(rule RuleDef, ctx *Context) Result {
	ctx.Options = a.config.GetRuleOptions(rule.ID)
	defer func() { ctx.Options = nil }()

	diags := rule.Check(ctx)
	for i := range diags {
		diags[i].RuleID = rule.ID
		diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		a.log(diags[i])
	}
	return Result{Rule: rule, Diagnostics: diags}
}

func (a *Analyzer) log(d Diagnostic) {
	a.logger.Log(context.Background(), d.Severity.Level(), d.Message, "rule", d.RuleID)
	if len(d.Suggestions) > 0 {
		a.logger.Info(" Did you mean: "+strings.Join(d.Suggestions, ", "), "rule", d.RuleID)
	}
}

// Disable disables a rule by ID.
func (a *Analyzer) Disable(ruleID string) {
	a.config.Disable(ruleID)
}

// Enable enables a previously disabled rule.
func (a *Analyzer) Enable(ruleID string) {
	delete(a.config.DisabledRules, ruleID)
}
