package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	MetadataOut string // Overrides metadata_header
	PropSetsOut string // Overrides propsets_header
	SkipCheck   bool   // Skip validation before generating
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the C++ property metadata headers",
		Long: `Check the catalog, then write the property metadata header and the
props-by-set header.

Validation problems are logged but never stop generation. A property with
incomplete metadata does stop it, and leaves existing headers untouched.`,
		Example: `  # Check and regenerate both headers
  ofxprops generate

  # Write the headers somewhere else
  ofxprops generate --metadata-out build/gen_props_metadata.hxx --propsets-out build/gen_props_by_set.hxx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.MetadataOut, "metadata-out", "", "Path of the generated metadata header")
	cmd.Flags().StringVar(&opts.PropSetsOut, "propsets-out", "", "Path of the generated props-by-set header")
	cmd.Flags().BoolVar(&opts.SkipCheck, "skip-check", false, "Do not validate before generating")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	eng := cmdCtx.Engine

	metadataPath := firstNonEmpty(opts.MetadataOut, cfg.MetadataHeader)
	propSetsPath := firstNonEmpty(opts.PropSetsOut, cfg.PropSetsHeader)

	if !opts.SkipCheck {
		report, err := eng.Check()
		if err != nil {
			return err
		}
		if n := report.ErrorCount(); n > 0 {
			cmdCtx.Logger.Warn("catalog has validation errors, generating anyway", "errors", n)
		}
	}

	if cfg.Verbose {
		r.Println("=== Generating " + filepath.Base(metadataPath))
	}
	if err := eng.GenerateHeaders(metadataPath, ""); err != nil {
		return err
	}
	if cfg.Verbose {
		r.Println("=== Generating props by set header " + filepath.Base(propSetsPath))
	}
	if err := eng.GenerateHeaders("", propSetsPath); err != nil {
		return err
	}

	r.Success("Generated " + metadataPath)
	r.Success("Generated " + propSetsPath)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
