package commands

import (
	"log/slog"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/config"
	"github.com/AcademySoftwareFoundation/openfx/internal/cli/output"
	"github.com/AcademySoftwareFoundation/openfx/internal/engine"
	"github.com/AcademySoftwareFoundation/openfx/pkg/emit"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// The include directory and catalog must exist.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	if err := cmdCtx.Cfg.ValidateInputs(); err != nil {
		return nil, err
	}
	eng, err := createEngine(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	cmdCtx.Engine = eng
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that don't read the catalog.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults rooted at the
// working directory when none was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

func createEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	lintCfg, err := cfg.LintRules()
	if err != nil {
		return nil, err
	}
	scanOpts := cfg.ScannerOptions()

	return engine.New(engine.Config{
		IncludeDir:  cfg.IncludeDir,
		CatalogPath: cfg.Catalog,
		Scanner:     &scanOpts,
		Lint:        lintCfg,
		Header:      emit.DefaultHeaderOptions(),
		Docs:        emit.DocOptions{PropsDocName: docName(cfg.PropsDoc)},
		Logger:      logger,
	})
}
