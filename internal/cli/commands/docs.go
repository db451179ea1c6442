package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// DocsOptions holds options for the docs command.
type DocsOptions struct {
	PropsDoc    string // Overrides props_doc
	PropSetsDoc string // Overrides propsets_doc
}

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	opts := &DocsOptions{}
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate the reStructuredText property references",
		Long: `Write the property reference, grouped by type, and the property set
reference, which also documents action arguments.

Both documents are generated from the catalog alone; the include directory
is not scanned.`,
		Example: `  # Regenerate both references
  ofxprops docs

  # Write them to a scratch directory
  ofxprops docs --props-doc /tmp/props.rst --propsets-doc /tmp/propsets.rst`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDocs(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.PropsDoc, "props-doc", "", "Path of the generated property reference")
	cmd.Flags().StringVar(&opts.PropSetsDoc, "propsets-doc", "", "Path of the generated property set reference")

	return cmd
}

func runDocs(cmd *cobra.Command, opts *DocsOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	propsDoc := firstNonEmpty(opts.PropsDoc, cfg.PropsDoc)
	propSetsDoc := firstNonEmpty(opts.PropSetsDoc, cfg.PropSetsDoc)

	if cfg.Verbose {
		r.Println("=== Generating " + filepath.Base(propsDoc) + " and " + filepath.Base(propSetsDoc))
	}
	eng := cmdCtx.Engine
	if opts.PropsDoc != "" {
		// The set reference links to the property reference by document name.
		override := *cfg
		override.PropsDoc = propsDoc
		if eng, err = createEngine(&override, cmdCtx.Logger); err != nil {
			return err
		}
	}
	if err := eng.GenerateDocs(propsDoc, propSetsDoc); err != nil {
		return err
	}

	r.Success("Generated " + propsDoc)
	r.Success("Generated " + propSetsDoc)
	return nil
}

// docName returns the Sphinx document name of a generated .rst path.
func docName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
