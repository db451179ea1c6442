package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceCommand(t *testing.T) {
	loadConfig(t, writeProject(t, ""))

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "ofxCore.h"), []byte(testHeader), 0o600))
	nested := filepath.Join(src, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "ofxExtra.h"), []byte("#define kOfxPropExtra \"Extra\"\n"), 0o600))

	tests := []struct {
		name      string
		args      []string
		wantExtra bool
	}{
		{"top level only", nil, false},
		{"recursive", []string{"-r"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "ref.rst")
			args := append([]string{"-i", src, "--out", outPath}, tt.args...)

			stdout, _, err := execute(t, NewReferenceCommand(), args...)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Generated "+outPath)

			data, err := os.ReadFile(outPath)
			require.NoError(t, err)
			out := string(data)
			assert.Contains(t, out, ".. doxygendefine:: kOfxPropTime\n")
			assert.Contains(t, out, ".. doxygendefine:: kOfxImageEffectPluginRenderThreadSafety\n")
			assert.NotContains(t, out, "kOfxPropertySuite")
			if tt.wantExtra {
				assert.Contains(t, out, "kOfxPropExtra")
			} else {
				assert.NotContains(t, out, "kOfxPropExtra")
			}
		})
	}
}

func TestReferenceCommand_RequiresFlags(t *testing.T) {
	_, _, err := execute(t, NewReferenceCommand(), "-i", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"out" not set`)
}
