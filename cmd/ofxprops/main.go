// Package main is the ofxprops command.
package main

import (
	"os"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
