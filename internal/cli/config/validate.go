package config

import (
	"fmt"
	"os"
	"slices"
)

var outputModes = []string{"", "auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if !slices.Contains(outputModes, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	if _, err := c.LintRules(); err != nil {
		return fmt.Errorf("invalid lint configuration: %w", err)
	}
	return nil
}

// ValidateInputs checks that the include directory and catalog exist.
// Only commands that read them call this, so help works anywhere.
func (c *Config) ValidateInputs() error {
	if info, err := os.Stat(c.IncludeDir); err != nil || !info.IsDir() {
		return fmt.Errorf("include directory does not exist: %s\nHint: Use --include-dir or set include_dir in ofxprops.yaml", c.IncludeDir)
	}
	if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
		return fmt.Errorf("catalog does not exist: %s\nHint: Use --catalog or set catalog in ofxprops.yaml", c.Catalog)
	}
	return nil
}
