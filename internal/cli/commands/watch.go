package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/config"
	"github.com/AcademySoftwareFoundation/openfx/internal/cli/output"
	"github.com/AcademySoftwareFoundation/openfx/internal/engine"
	"github.com/spf13/cobra"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Docs bool // Also regenerate the reStructuredText references
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate outputs when headers or the catalog change",
		Long: `Run generate once, then watch the include directory and the catalog and
run it again after every change. Changes to the generated files themselves
are ignored.

Press Ctrl+C to stop.`,
		Example: `  # Keep the headers up to date while editing ofx-props.yml
  ofxprops watch

  # Keep the documentation up to date too
  ofxprops watch --docs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Docs, "docs", false, "Also regenerate the property references")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	regenerate := func(context.Context) error {
		return regenerateOutputs(cfg, r, logger, opts)
	}
	if err := regenerate(ctx); err != nil {
		r.Error(err.Error())
	}

	ignore := []string{cfg.MetadataHeader, cfg.PropSetsHeader, cfg.PropsDoc, cfg.PropSetsDoc}
	r.Println("Watching " + cfg.IncludeDir + " and " + cfg.Catalog)

	return engine.Watch(ctx, engine.WatchOptions{
		Paths:      []string{cfg.IncludeDir, cfg.Catalog},
		Extensions: append(cfg.ScannerOptions().Extensions, ".yml", ".yaml"),
		Ignore:     ignore,
		Logger:     logger,
	}, regenerate)
}

// regenerateOutputs rebuilds every output from a fresh engine so edits to
// headers and catalog are both picked up.
func regenerateOutputs(cfg *config.Config, r *output.Renderer, logger *slog.Logger, opts *WatchOptions) error {
	eng, err := createEngine(cfg, logger)
	if err != nil {
		return err
	}

	report, err := eng.Check()
	if err != nil {
		return err
	}
	if n := report.ErrorCount(); n > 0 {
		r.Warning(fmt.Sprintf("%d validation errors, see the log for details", n))
	}

	if err := eng.GenerateHeaders(cfg.MetadataHeader, cfg.PropSetsHeader); err != nil {
		return err
	}
	if opts.Docs {
		if err := eng.GenerateDocs(cfg.PropsDoc, cfg.PropSetsDoc); err != nil {
			return err
		}
	}

	r.Success("Regenerated outputs")
	return nil
}
