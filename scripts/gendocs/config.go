package main

import (
	"log"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/config"
	"github.com/AcademySoftwareFoundation/openfx/pkg/emit"
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "paths", "output", "scanner", "lint"
}

// getConfigSchema returns the configuration schema, mirroring
// internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "include_dir", Type: "string", Default: config.DefaultIncludeDir, Description: "Directory scanned for property #defines", Category: "paths"},
		{Name: "catalog", Type: "string", Default: config.DefaultCatalog, Description: "Property catalog (YAML)", Category: "paths"},
		{Name: "metadata_header", Type: "string", Default: config.DefaultMetadataHeader, Description: "Generated property metadata header", Category: "paths"},
		{Name: "propsets_header", Type: "string", Default: config.DefaultPropSetsHeader, Description: "Generated props-by-set header", Category: "paths"},
		{Name: "props_doc", Type: "string", Default: config.DefaultPropsDoc, Description: "Generated property reference", Category: "paths"},
		{Name: "propsets_doc", Type: "string", Default: config.DefaultPropSetsDoc, Description: "Generated property set reference", Category: "paths"},

		{Name: "verbose", Type: "bool", Default: "false", Description: "Print progress headings and debug logs", Category: "output"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown or json", Category: "output"},

		{Name: "scanner.marker", Type: "string", Default: scanner.DefaultMarker, Description: "Substring that identifies property macros", Category: "scanner"},
		{Name: "scanner.exclude", Type: "[]string", Default: strings.Join(scanner.DefaultExclude, ", "), Description: "Macros that carry the marker but are not properties", Category: "scanner"},
		{Name: "scanner.include", Type: "[]string", Default: strings.Join(scanner.DefaultInclude, ", "), Description: "Properties whose names lack the marker", Category: "scanner"},
		{Name: "scanner.extensions", Type: "[]string", Default: strings.Join(scanner.DefaultExtensions, " "), Description: "File extensions scanned", Category: "scanner"},
		{Name: "scanner.recursive", Type: "bool", Default: "true", Description: "Scan subdirectories of the include directory", Category: "scanner"},

		{Name: "lint.disabled", Type: "[]string", Description: "Rule IDs to skip", Category: "lint"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Severity override per rule ID", Category: "lint"},
		{Name: "lint.rules", Type: "map[string]map[string]any", Description: "Rule-specific options per rule ID", Category: "lint"},
	}
}

var configCategories = []struct {
	Key   string
	Title string
}{
	{"paths", "Paths"},
	{"output", "Output"},
	{"scanner", "Header Scanner"},
	{"lint", "Validation Rules"},
}

// generateConfigDocs writes the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	w := emit.NewRSTWriter()
	w.Label("ofxpropsConfig")
	w.Title("ofxprops Configuration", '=')
	w.Paragraph("ofxprops is configured via " + emit.Literal("ofxprops.yaml") +
		" in the project root. Relative paths are resolved against the directory holding the file.")

	fields := getConfigSchema()
	for _, c := range configCategories {
		w.Title(c.Title, '-')
		var items []string
		for _, f := range fields {
			if f.Category != c.Key {
				continue
			}
			item := emit.Literal(f.Name) + " (" + f.Type + ") - " + f.Description
			if f.Default != "" {
				item += ". Default: " + emit.Literal(f.Default)
			}
			items = append(items, item)
		}
		w.BulletList(items)
	}

	w.Title("Example", '-')
	w.CodeBlock("yaml", `include_dir: include
catalog: include/ofx-props.yml
output: auto
scanner:
  include: [kOfxImageEffectFrameVarying, kOfxImageEffectPluginRenderThreadSafety]
lint:
  severity:
    PV04: error`)

	return writeDoc(outDir, "configuration.rst", w)
}
