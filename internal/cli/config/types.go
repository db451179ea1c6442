// Package config provides configuration management for the ofxprops CLI.
//
// Configuration is layered with koanf: built-in defaults, then an
// ofxprops.yaml file found in the project root, then OFXPROPS_* environment
// variables, then explicitly set command-line flags.
package config

import (
	"fmt"

	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
)

// Config holds all CLI configuration options.
type Config struct {
	IncludeDir     string         `koanf:"include_dir"`
	Catalog        string         `koanf:"catalog"`
	MetadataHeader string         `koanf:"metadata_header"`
	PropSetsHeader string         `koanf:"propsets_header"`
	PropsDoc       string         `koanf:"props_doc"`
	PropSetsDoc    string         `koanf:"propsets_doc"`
	Verbose        bool           `koanf:"verbose"`
	OutputFormat   string         `koanf:"output"`
	Scanner        *ScannerConfig `koanf:"scanner"`
	Lint           *LintConfig    `koanf:"lint"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// ScannerConfig overrides the header scan heuristics. Empty fields keep the
// built-in defaults.
type ScannerConfig struct {
	Marker     string   `koanf:"marker"`
	Exclude    []string `koanf:"exclude"`
	Include    []string `koanf:"include"`
	Extensions []string `koanf:"extensions"`
	Recursive  *bool    `koanf:"recursive"`
}

// LintConfig holds validation rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// Default configuration values, relative to the project root.
const (
	DefaultIncludeDir     = "include"
	DefaultCatalog        = "include/ofx-props.yml"
	DefaultMetadataHeader = "include/gen_props_metadata.hxx"
	DefaultPropSetsHeader = "include/gen_props_by_set.hxx"
	DefaultPropsDoc       = "Documentation/sources/Reference/ofxPropertiesReferenceGenerated.rst"
	DefaultPropSetsDoc    = "Documentation/sources/Reference/ofxPropertySetsGenerated.rst"
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// ScannerOptions returns the scan options with overrides applied.
func (c *Config) ScannerOptions() scanner.Options {
	opts := scanner.DefaultOptions()
	s := c.Scanner
	if s == nil {
		return opts
	}
	if s.Marker != "" {
		opts.Marker = s.Marker
	}
	if s.Exclude != nil {
		opts.Exclude = s.Exclude
	}
	if s.Include != nil {
		opts.Include = s.Include
	}
	if len(s.Extensions) > 0 {
		opts.Extensions = s.Extensions
	}
	if s.Recursive != nil {
		opts.Recursive = *s.Recursive
	}
	return opts
}

// LintRules converts the lint section into an analyzer configuration.
func (c *Config) LintRules() (*lint.Config, error) {
	cfg := lint.NewConfig()
	if c.Lint == nil {
		return cfg, nil
	}
	for _, id := range c.Lint.Disabled {
		cfg.Disable(id)
	}
	for id, s := range c.Lint.Severity {
		sev, err := lint.ParseSeverity(s)
		if err != nil {
			return nil, fmt.Errorf("lint.severity.%s: %w", id, err)
		}
		cfg.SetSeverity(id, sev)
	}
	for id, opts := range c.Lint.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg, nil
}
