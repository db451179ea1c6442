package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli"
	"github.com/AcademySoftwareFoundation/openfx/internal/cli/config"
	"github.com/AcademySoftwareFoundation/openfx/pkg/emit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs writes one page covering every command of the CLI.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	rootCmd := cli.NewRootCmd()
	w := emit.NewRSTWriter()

	w.Label("ofxpropsCLI")
	w.Title("ofxprops Command Reference", '=')
	w.Paragraph(strings.TrimSpace(rootCmd.Long))

	w.Title("Basic Usage", '-')
	w.CodeBlock("bash", "ofxprops <command> [options]")

	w.Title("Global Options", '-')
	w.Paragraph("These flags are available for all commands:")
	writeFlags(w, rootCmd.PersistentFlags())

	w.Title("Environment Variables", '-')
	w.Paragraph(fmt.Sprintf("Every configuration key can be set through the environment with the %s prefix, "+
		"for example %s. Command-line flags take precedence over environment variables.",
		emit.Literal(config.EnvPrefix), emit.Literal(config.EnvPrefix+"CATALOG")))

	w.Title("Exit Codes", '-')
	w.BulletList([]string{
		emit.Literal("0") + " - Success, including checks that found problems without " + emit.Literal("--strict"),
		emit.Literal("1") + " - Error (check stderr for details)",
	})

	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		writeCommand(w, cmd)
	}

	return writeDoc(outDir, "cli.rst", w)
}

func writeCommand(w *emit.RSTWriter, cmd *cobra.Command) {
	w.Label("ofxprops_" + cmd.Name())
	w.Title(cmd.Name(), '-')
	if cmd.Long != "" {
		w.Paragraph(strings.TrimSpace(cmd.Long))
	} else {
		w.Paragraph(cmd.Short)
	}

	useLine := cmd.UseLine()
	if !strings.HasPrefix(useLine, "ofxprops") {
		useLine = "ofxprops " + useLine
	}
	w.CodeBlock("bash", useLine)

	if cmd.HasLocalFlags() {
		w.Paragraph(emit.Bold("Options"))
		writeFlags(w, cmd.LocalFlags())
	}

	if cmd.Example != "" {
		w.Paragraph(emit.Bold("Examples"))
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}
}

// writeFlags writes one bullet per visible flag.
func writeFlags(w *emit.RSTWriter, flags *pflag.FlagSet) {
	var items []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		item := emit.Literal("--" + f.Name)
		if f.Shorthand != "" {
			item += ", " + emit.Literal("-"+f.Shorthand)
		}
		item += " - " + f.Usage
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
			item += " (default " + emit.Literal(f.DefValue) + ")"
		}
		items = append(items, item)
	})
	w.BulletList(items)
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	// Find minimum indentation (ignoring empty lines)
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.TrimSpace(example)
	}

	var result []string
	for _, line := range lines {
		if len(line) >= minIndent {
			result = append(result, line[minIndent:])
		} else {
			result = append(result, strings.TrimLeft(line, " \t"))
		}
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
