// Package main generates the reStructuredText pages that document ofxprops
// itself: its commands, its validation rules and its configuration file.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=Documentation/sources/Guide/ofxprops
//	go run ./scripts/gendocs -gen=rules
//	go run ./scripts/gendocs -gen=config
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, rules, config, all")
	outDirFlag = flag.String("outdir", "", "output directory (default: Documentation/sources/Guide/ofxprops)")
)

var generators = map[string]func(outDir string) error{
	"cli":    generateCLIDocs,
	"rules":  generateRulesDocs,
	"config": generateConfigDocs,
}

func main() {
	flag.Parse()

	if _, ok := generators[*genFlag]; !ok && *genFlag != "all" {
		log.Fatalf("unknown -gen value: %s (use: cli, rules, config, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}
	log.Printf("Project root: %s", projectRoot)

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Join(projectRoot, "Documentation", "sources", "Guide", "ofxprops")
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	for _, name := range []string{"cli", "rules", "config"} {
		if *genFlag != "all" && *genFlag != name {
			continue
		}
		if err := generators[name](outDir); err != nil {
			log.Fatalf("failed to generate %s docs: %v", name, err)
		}
	}

	log.Println("Done!")
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// writeDoc writes a generated page with the do-not-edit marker.
func writeDoc(outDir, name string, w interface{ String() string }) error {
	content := ".. This file is generated by scripts/gendocs. DO NOT EDIT.\n\n" + w.String()
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}
