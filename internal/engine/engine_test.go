package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AcademySoftwareFoundation/openfx/internal/testutil"
	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, catalogFile string) *Engine {
	t.Helper()
	eng, err := New(Config{
		IncludeDir:  filepath.Join("testdata", "include"),
		CatalogPath: filepath.Join("testdata", catalogFile),
		Logger:      testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	return eng
}

func TestNew_RequiresCatalog(t *testing.T) {
	_, err := New(Config{IncludeDir: "include"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog path is required")
}

func TestEngine_Scan(t *testing.T) {
	eng := newTestEngine(t, "ofx-props.yml")

	defined, err := eng.Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"kOfxImageEffectPluginRenderThreadSafety",
		"kOfxPropName",
		"kOfxPropTime",
		"kOfxPropType",
	}, defined.Sorted())
}

func TestEngine_ScanMissingDir(t *testing.T) {
	eng, err := New(Config{IncludeDir: filepath.Join(t.TempDir(), "nope"), CatalogPath: "x.yml"})
	require.NoError(t, err)

	_, err = eng.Scan()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan")
}

func TestEngine_Check(t *testing.T) {
	t.Run("consistent inputs", func(t *testing.T) {
		report, err := newTestEngine(t, "ofx-props.yml").Check()
		require.NoError(t, err)
		assert.Equal(t, 0, report.ErrorCount())
		assert.Empty(t, report.Diagnostics())
	})

	t.Run("inconsistent inputs", func(t *testing.T) {
		logger, logs := testutil.NewCaptureLogger(t)
		eng, err := New(Config{
			IncludeDir:  filepath.Join("testdata", "include"),
			CatalogPath: filepath.Join("testdata", "ofx-props-broken.yml"),
			Logger:      logger,
		})
		require.NoError(t, err)

		report, err := eng.Check()
		require.NoError(t, err, "validation findings are not errors")
		assert.Equal(t, 6, report.ErrorCount())
		assert.Contains(t, logs.String(), "No YAML metadata found for kOfxPropTime")
		assert.Contains(t, logs.String(), "No props metadata found for EffectInstance.kOfxPropGhost")
		assert.Contains(t, logs.String(), "Prop kOfxPropOrphan not used in any prop set")
	})

	t.Run("disabled rule", func(t *testing.T) {
		eng, err := New(Config{
			IncludeDir:  filepath.Join("testdata", "include"),
			CatalogPath: filepath.Join("testdata", "ofx-props-broken.yml"),
			Lint:        lint.NewConfig().Disable("PV01"),
		})
		require.NoError(t, err)

		report, err := eng.Check()
		require.NoError(t, err)
		assert.Equal(t, 2, report.ErrorCount())
	})

	t.Run("missing catalog", func(t *testing.T) {
		eng, err := New(Config{
			IncludeDir:  filepath.Join("testdata", "include"),
			CatalogPath: filepath.Join("testdata", "missing.yml"),
		})
		require.NoError(t, err)

		_, err = eng.Check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.yml")
	})
}

func TestEngine_GenerateHeaders(t *testing.T) {
	out := t.TempDir()
	metadata := filepath.Join(out, "gen", "gen_props_metadata.hxx")
	propSets := filepath.Join(out, "gen", "gen_props_by_set.hxx")

	eng := newTestEngine(t, "ofx-props.yml")
	require.NoError(t, eng.GenerateHeaders(metadata, propSets))

	data, err := os.ReadFile(metadata)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{ kOfxPropTime, {PropType::Double}, 1, Writable::Host, false, {} },")
	assert.Contains(t, string(data),
		`{ kOfxImageEffectPluginRenderThreadSafety, {PropType::Enum}, 1, Writable::Plugin, false, {"kOfxImageEffectRenderUnsafe","kOfxImageEffectRenderFullySafe"} },`)

	data, err = os.ReadFile(propSets)
	require.NoError(t, err)
	assert.Contains(t, string(data), "{ \"EffectInstance\", { kOfxPropName,\n   kOfxPropTime,\n   kOfxPropType } },")
	assert.NotContains(t, string(data), "Common_DEF")

	entries, err := os.ReadDir(filepath.Dir(metadata))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestEngine_GenerateHeaders_SkipsEmptyPath(t *testing.T) {
	out := t.TempDir()
	propSets := filepath.Join(out, "sets.hxx")

	require.NoError(t, newTestEngine(t, "ofx-props.yml").GenerateHeaders("", propSets))
	assert.FileExists(t, propSets)
}

func TestEngine_GenerateDocs(t *testing.T) {
	out := t.TempDir()
	propsDoc := filepath.Join(out, "ofxPropertiesReferenceGenerated.rst")
	setsDoc := filepath.Join(out, "ofxPropertySetsGenerated.rst")

	require.NoError(t, newTestEngine(t, "ofx-props.yml").GenerateDocs(propsDoc, setsDoc))

	data, err := os.ReadFile(propsDoc)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".. _prop_kOfxPropTime:")
	assert.Contains(t, string(data), "Enumeration Properties")

	data, err = os.ReadFile(setsDoc)
	require.NoError(t, err)
	assert.Contains(t, string(data), ".. _propset_EffectInstance:")
	assert.Contains(t, string(data), ".. _action_Render:")
}

func TestWriteFile_FailureKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.hxx")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o600))

	dim := 1
	cat := catalog.New(map[string]*catalog.Metadata{
		"kOfxPropBad": {Types: catalog.TypeList{catalog.TypeInt}, Dimension: &dim},
	}, nil, nil)
	eng := &Engine{logger: testutil.NewTestLogger(t), catalog: cat}

	err := eng.GenerateHeaders(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kOfxPropBad is missing writable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestGenerateReference(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ofxPropertiesReference.rst")
	opts := scanner.DefaultOptions()

	require.NoError(t, GenerateReference(filepath.Join("testdata", "include"), out, opts, testutil.NewTestLogger(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, ".. _propertiesReference:\n\nProperties Reference\n"))
	assert.Contains(t, text, ".. doxygendefine:: kOfxImageEffectFrameVarying\n")
	assert.Contains(t, text, ".. doxygendefine:: kOfxPropTime\n")
	assert.NotContains(t, text, "kOfxPropertySuite")
	assert.Equal(t, 1, strings.Count(text, "kOfxImageEffectPluginRenderThreadSafety"))
}
