package lint

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a catalog inconsistency that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Level maps the severity onto a log level.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// ParseSeverity parses a severity name as used in configuration files.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// RuleDef is a catalog rule definition.
type RuleDef struct {
	ID          string   // Unique identifier, e.g. "PV01"
	Name        string   // Human-readable name, e.g. "catalog-completeness"
	Group       string   // Category: "completeness", "coverage", "docs"
	Description string   // One-line description
	Severity    Severity // Default severity
	Check       Check

	Rationale string // Why the rule exists
	Fix       string // How to resolve a finding
}

// Check is the function signature for rule checks.
type Check func(ctx *Context) []Diagnostic

// Diagnostic is a single finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Property string // Property the finding is about
	Set      string // Property set or action, when relevant

	// Suggestions are near-miss names, best first.
	Suggestions []string
}

// Context is what rules check.
type Context struct {
	Catalog *catalog.Catalog
	// Defined holds the names found by the header scan, nil when the
	// sources were not scanned.
	Defined scanner.NameSet
	// Options are the configured options of the rule being run.
	Options map[string]any
}

// NewContext creates a rule context.
func NewContext(cat *catalog.Catalog, defined scanner.NameSet) *Context {
	return &Context{Catalog: cat, Defined: defined}
}

// HasSources reports whether a header scan is available.
func (c *Context) HasSources() bool {
	return c.Defined != nil
}
