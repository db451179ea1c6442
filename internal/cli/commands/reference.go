package commands

import (
	"fmt"
	"path/filepath"

	"github.com/AcademySoftwareFoundation/openfx/internal/engine"
	"github.com/spf13/cobra"
)

// ReferenceOptions holds options for the reference command.
type ReferenceOptions struct {
	SourceDir string // Directory to scan
	Out       string // Output .rst path
	Recursive bool   // Descend into subdirectories
}

// NewReferenceCommand creates the reference command.
func NewReferenceCommand() *cobra.Command {
	opts := &ReferenceOptions{}
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Generate the Doxygen property reference page",
		Long: `Scan a source directory for property #defines and write a page with
one doxygendefine directive per property.

Unlike the other commands, the scan only descends into subdirectories
with --recursive.`,
		Example: `  # Scan the include directory
  ofxprops reference -i include --out Documentation/sources/Reference/ofxPropertiesReference.rst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReference(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SourceDir, "input", "i", "", "Source directory to scan")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Output file")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Scan subdirectories")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagDirname("input")

	return cmd
}

func runReference(cmd *cobra.Command, opts *ReferenceOptions) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	scanOpts := cmdCtx.Cfg.ScannerOptions()
	scanOpts.Recursive = opts.Recursive

	if err := engine.GenerateReference(opts.SourceDir, opts.Out, scanOpts, cmdCtx.Logger); err != nil {
		return fmt.Errorf("failed to generate reference: %w", err)
	}

	r.Success("Generated " + filepath.Clean(opts.Out))
	return nil
}
