// Package engine runs the property pipeline.
// It wires the header scan, catalog load, cross-validation and artifact
// emission in a fixed order and owns writing the generated files.
package engine

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
	"github.com/AcademySoftwareFoundation/openfx/pkg/emit"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	_ "github.com/AcademySoftwareFoundation/openfx/pkg/lint/rules" // register PV rules
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
)

// Engine orchestrates one pipeline run. It caches the scan and the loaded
// catalog, so create a new Engine to pick up changed inputs.
type Engine struct {
	logger *slog.Logger

	includeDir  string
	catalogPath string
	scanOpts    scanner.Options
	lintConfig  *lint.Config
	headerOpts  emit.HeaderOptions
	docOpts     emit.DocOptions

	defined scanner.NameSet
	catalog *catalog.Catalog
}

// Config holds engine configuration.
type Config struct {
	// IncludeDir is the source tree scanned for property #defines
	IncludeDir string
	// CatalogPath is the YAML property catalog
	CatalogPath string
	// Scanner controls which defines count as properties (zero value uses defaults)
	Scanner *scanner.Options
	// Lint configures the validation rules (optional)
	Lint *lint.Config
	// Header configures the generated C++ headers
	Header emit.HeaderOptions
	// Docs configures the generated RST documents
	Docs emit.DocOptions
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a new engine. Nothing is read until a stage runs.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("catalog path is required")
	}

	scanOpts := scanner.DefaultOptions()
	if cfg.Scanner != nil {
		scanOpts = *cfg.Scanner
	}

	lintCfg := cfg.Lint
	if lintCfg == nil {
		lintCfg = lint.NewConfig()
	}

	logger.Debug("initializing engine", "include_dir", cfg.IncludeDir, "catalog", cfg.CatalogPath)

	return &Engine{
		logger:      logger,
		includeDir:  cfg.IncludeDir,
		catalogPath: cfg.CatalogPath,
		scanOpts:    scanOpts,
		lintConfig:  lintCfg,
		headerOpts:  cfg.Header,
		docOpts:     cfg.Docs,
	}, nil
}

// Scan returns the property names defined in the include directory.
func (e *Engine) Scan() (scanner.NameSet, error) {
	if e.defined != nil {
		return e.defined, nil
	}
	if e.includeDir == "" {
		return nil, fmt.Errorf("include directory is required")
	}
	defined, err := scanner.ScanDir(e.includeDir, e.scanOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", e.includeDir, err)
	}
	e.logger.Info(fmt.Sprintf("Got %d props from %q dir", len(defined), filepath.Base(e.includeDir)))
	e.defined = defined
	return defined, nil
}

// Load returns the expanded catalog.
func (e *Engine) Load() (*catalog.Catalog, error) {
	if e.catalog != nil {
		return e.catalog, nil
	}
	cat, err := catalog.Load(e.catalogPath)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("catalog loaded",
		"properties", len(cat.Properties),
		"sets", len(cat.Sets),
		"actions", len(cat.Actions))
	e.catalog = cat
	return cat, nil
}

// Check scans, loads and runs every enabled validation rule. The returned
// report is advisory; only scan and load failures are errors.
func (e *Engine) Check() (*lint.Report, error) {
	defined, err := e.Scan()
	if err != nil {
		return nil, err
	}
	cat, err := e.Load()
	if err != nil {
		return nil, err
	}

	analyzer := lint.NewAnalyzer(e.lintConfig, e.logger)
	report := analyzer.Analyze(lint.NewContext(cat, defined))
	e.logger.Debug("validation complete", "errors", report.ErrorCount(), "warnings", report.Count(lint.SeverityWarning))
	return report, nil
}

// GenerateHeaders writes the metadata and props-by-set headers. An empty
// path skips that header.
func (e *Engine) GenerateHeaders(metadataPath, propSetsPath string) error {
	cat, err := e.Load()
	if err != nil {
		return err
	}

	if metadataPath != "" {
		e.logger.Debug("generating metadata header", "path", metadataPath)
		if err := writeFile(metadataPath, func(w io.Writer) error {
			return emit.WriteMetadataHeader(w, cat, e.headerOpts)
		}); err != nil {
			return err
		}
	}
	if propSetsPath != "" {
		e.logger.Debug("generating props by set header", "path", propSetsPath)
		if err := writeFile(propSetsPath, func(w io.Writer) error {
			return emit.WritePropSetsHeader(w, cat, e.headerOpts)
		}); err != nil {
			return err
		}
	}
	return nil
}

// GenerateDocs writes the property and property-set reference documents.
// An empty path skips that document.
func (e *Engine) GenerateDocs(propsDocPath, propSetsDocPath string) error {
	cat, err := e.Load()
	if err != nil {
		return err
	}

	if propsDocPath != "" {
		e.logger.Debug("generating property reference", "path", propsDocPath)
		if err := writeFile(propsDocPath, func(w io.Writer) error {
			return emit.WritePropertyReference(w, cat)
		}); err != nil {
			return err
		}
	}
	if propSetsDocPath != "" {
		e.logger.Debug("generating property set reference", "path", propSetsDocPath)
		if err := writeFile(propSetsDocPath, func(w io.Writer) error {
			return emit.WritePropertySetReference(w, cat, e.docOpts)
		}); err != nil {
			return err
		}
	}
	return nil
}

// GenerateReference writes the legacy Doxygen property reference for the
// defines found under dir. Names lacking the marker are always listed.
func GenerateReference(dir, outPath string, opts scanner.Options, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	defined, err := scanner.ScanDir(dir, opts)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	for _, name := range opts.Include {
		defined.Add(name)
	}
	logger.Debug("generating properties reference", "path", outPath, "properties", len(defined))
	return writeFile(outPath, func(w io.Writer) error {
		return emit.WriteDoxygenReference(w, defined.Sorted())
	})
}

// writeFile renders into memory and only then replaces path, so a render
// failure leaves any existing file untouched.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // generated sources are world readable
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
