package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCommand(t *testing.T) {
	cfgPath := writeProject(t, "")
	cfg := loadConfig(t, cfgPath)

	stdout, _, err := execute(t, NewDocsCommand())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated "+cfg.PropsDoc)

	props, err := os.ReadFile(cfg.PropsDoc)
	require.NoError(t, err)
	assert.Contains(t, string(props), ".. _prop_kOfxPropTime:")
	assert.Contains(t, string(props), "- **Dimension**: Variable (0 or more)")

	sets, err := os.ReadFile(cfg.PropSetsDoc)
	require.NoError(t, err)
	assert.Contains(t, string(sets), "<ofxPropertiesReferenceGenerated>")
	assert.Contains(t, string(sets), "No properties defined for this set.")
	assert.Contains(t, string(sets), "-- no in/out args --")
}

func TestDocsCommand_OverrideLinksRenamedDocument(t *testing.T) {
	cfgPath := writeProject(t, "")
	loadConfig(t, cfgPath)

	out := t.TempDir()
	propsDoc := filepath.Join(out, "props.rst")
	propSetsDoc := filepath.Join(out, "sets.rst")

	_, _, err := execute(t, NewDocsCommand(), "--props-doc", propsDoc, "--propsets-doc", propSetsDoc)
	require.NoError(t, err)

	sets, err := os.ReadFile(propSetsDoc)
	require.NoError(t, err)
	assert.Contains(t, string(sets), ":doc:`Properties Reference (Generated) <props>`")
}

func TestDocName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"Documentation/sources/Reference/ofxPropertiesReferenceGenerated.rst", "ofxPropertiesReferenceGenerated"},
		{"props", "props"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docName(tt.path), tt.path)
	}
}
