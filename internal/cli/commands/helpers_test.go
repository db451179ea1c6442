package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AcademySoftwareFoundation/openfx/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testHeader = `#ifndef _ofxCore_h_
#define _ofxCore_h_

#define kOfxPropertySuite "OfxPropertySuite"
#define kOfxPropType "OfxPropType"
#define kOfxPropTime "OfxPropTime"

#endif
`

const testCatalog = `propertySets:
  EffectInstance:
    write: host
    props:
      - kOfxPropType
      - kOfxPropTime
  Empty: []

properties:
  kOfxPropType:
    type: string
    dimension: 1
    writable: host
  kOfxPropTime:
    type: double
    dimension: 0
    writable: host

Actions:
  Render:
    inArgs: [kOfxPropTime]
    outArgs: []
  Load:
    inArgs: []
    outArgs: []
`

// Four errors: kOfxPropTime has no metadata, kOfxPropOrphan has no
// definition and is unused, and kOfxPropGhost is a member without metadata.
const brokenCatalog = `propertySets:
  EffectInstance:
    props: [kOfxPropType, kOfxPropGhost]

properties:
  kOfxPropType: {type: string, dimension: 1, writable: host}
  kOfxPropOrphan: {type: int, dimension: 1, writable: host}
`

// writeProject creates a project with an include directory, a consistent
// catalog and an ofxprops.yaml holding cfgContent. It returns the config path.
func writeProject(t *testing.T, cfgContent string) string {
	t.Helper()
	dir := t.TempDir()
	include := filepath.Join(dir, "include")
	require.NoError(t, os.MkdirAll(include, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(include, "ofxCore.h"), []byte(testHeader), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(include, "ofx-props.yml"), []byte(testCatalog), 0o600))

	cfgPath := filepath.Join(dir, "ofxprops.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o600))
	return cfgPath
}

// writeCatalog replaces the project catalog.
func writeCatalog(t *testing.T, cfgPath, content string) {
	t.Helper()
	path := filepath.Join(filepath.Dir(cfgPath), "include", "ofx-props.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// loadConfig loads cfgPath as the current configuration for this test.
func loadConfig(t *testing.T, cfgPath string) *config.Config {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfg, err := config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	return cfg
}

// execute runs cmd with args and returns its stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
