package rules

import (
	"testing"

	"github.com/AcademySoftwareFoundation/openfx/internal/testutil"
	"github.com/AcademySoftwareFoundation/openfx/pkg/catalog"
	"github.com/AcademySoftwareFoundation/openfx/pkg/lint"
	"github.com/AcademySoftwareFoundation/openfx/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(doc))
	require.NoError(t, err)
	return cat
}

func names(list ...string) scanner.NameSet {
	s := make(scanner.NameSet)
	for _, n := range list {
		s.Add(n)
	}
	return s
}

func messages(diags []lint.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}

func TestRulesRegistered(t *testing.T) {
	for _, id := range []string{"PV01", "PV02", "PV03", "PV04"} {
		rule, ok := lint.GetByID(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, rule.Name)
		assert.NotEmpty(t, rule.Description)
		assert.NotNil(t, rule.Check)
	}
	assert.Equal(t, lint.SeverityWarning, mustRule(t, "PV04").Severity)
}

func mustRule(t *testing.T, id string) lint.RuleDef {
	t.Helper()
	rule, ok := lint.GetByID(id)
	require.True(t, ok)
	return rule
}

const roundTrip = `
properties: {kOfxPropX: {type: int, dimension: 1, writable: host}}
propertySets: {SetA: {props: [kOfxPropX]}}
`

func TestRoundTripHasNoErrors(t *testing.T) {
	cat := parse(t, roundTrip)
	report := lint.NewAnalyzer(nil, testutil.NewTestLogger(t)).Analyze(lint.NewContext(cat, names("kOfxPropX")))
	assert.Equal(t, 0, report.ErrorCount())
	assert.Empty(t, report.Diagnostics())
}

func TestCompleteness(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropFoo: {type: int, dimension: 1, writable: host}
  kOfxPropBoth: {type: int, dimension: 1, writable: host}
propertySets:
  SetA: {props: [kOfxPropFoo, kOfxPropBoth]}
`)

	t.Run("names in both report nothing", func(t *testing.T) {
		diags := checkCompleteness(lint.NewContext(cat, names("kOfxPropFoo", "kOfxPropBoth")))
		assert.Empty(t, diags)
	})

	t.Run("missing definition with suggestion", func(t *testing.T) {
		diags := checkCompleteness(lint.NewContext(cat, names("kOfxPropFooo", "kOfxPropBoth")))
		require.Len(t, diags, 2)

		assert.Equal(t, "No YAML metadata found for kOfxPropFooo", diags[0].Message)
		assert.Equal(t, "No prop definition found for 'kOfxPropFoo' in source/include", diags[1].Message)
		assert.Equal(t, []string{"kOfxPropFooo"}, diags[1].Suggestions)
		assert.Equal(t, "kOfxPropFoo", diags[1].Property)
	})

	t.Run("no near miss", func(t *testing.T) {
		diags := checkCompleteness(lint.NewContext(cat, names("kOfxPropBoth")))
		require.Len(t, diags, 1)
		assert.Empty(t, diags[0].Suggestions)
	})

	t.Run("suggestion options", func(t *testing.T) {
		ctx := lint.NewContext(cat, names("kOfxPropFooo", "kOfxPropBoth"))
		ctx.Options = map[string]any{"max_suggestions": 0}
		diags := checkCompleteness(ctx)
		require.Len(t, diags, 2)
		assert.Empty(t, diags[1].Suggestions)
	})

	t.Run("skipped without a scan", func(t *testing.T) {
		assert.Empty(t, checkCompleteness(lint.NewContext(cat, nil)))
	})
}

func TestSetMetadata(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropA: {type: int, dimension: 1, writable: host}
propertySets:
  SetB: {props: [kOfxPropZ, kOfxPropA, kOfxPropM]}
  SetA: {props: [Common_REF]}
  Common_DEF: [kOfxPropA, kOfxPropQ]
`)

	diags := checkSetMetadata(lint.NewContext(cat, nil))
	assert.Equal(t, []string{
		"No props metadata found for SetA.kOfxPropQ",
		"No props metadata found for SetB.kOfxPropM",
		"No props metadata found for SetB.kOfxPropZ",
	}, messages(diags))
	assert.Equal(t, "SetB", diags[1].Set)
}

func TestUnusedProperty(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropUsed: {type: int, dimension: 1, writable: host}
  kOfxPropViaDef: {type: int, dimension: 1, writable: host}
  kOfxPropOrphan: {type: int, dimension: 1, writable: host}
  kOfxPropOnlyInDef: {type: int, dimension: 1, writable: host}
propertySets:
  SetA: {props: ["kOfxPropUsed | write=plugin", Lst_REF]}
  Lst_DEF: [kOfxPropViaDef]
  Unused_DEF: [kOfxPropOnlyInDef]
`)

	diags := checkUnusedProperty(lint.NewContext(cat, nil))
	assert.Equal(t, []string{
		"Prop kOfxPropOnlyInDef not used in any prop set in YML file",
		"Prop kOfxPropOrphan not used in any prop set in YML file",
	}, messages(diags))
}

func TestActionMetadata(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropA: {type: int, dimension: 1, writable: host}
propertySets:
  SetA: {props: [kOfxPropA]}
Actions:
  Render:
    inArgs: [kOfxPropA, kOfxPropIn]
    outArgs: [kOfxPropOut]
  Load:
    inArgs: []
    outArgs: []
`)

	diags := checkActionMetadata(lint.NewContext(cat, nil))
	require.Len(t, diags, 2)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "Render inArgs kOfxPropIn")
	assert.Contains(t, diags[1].Message, "Render outArgs kOfxPropOut")
}

func TestAnalyzerRunsEveryRule(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropFoo: {type: int, dimension: 1, writable: host}
  kOfxPropOrphan: {type: int, dimension: 1, writable: host}
propertySets:
  SetA: {props: [kOfxPropFoo, kOfxPropGhost]}
Actions:
  Render: {inArgs: [kOfxPropGhost]}
`)
	logger, logs := testutil.NewCaptureLogger(t)

	report := lint.NewAnalyzer(nil, logger).Analyze(lint.NewContext(cat, names("kOfxPropFooo", "kOfxPropFoo")))

	// PV01: kOfxPropFooo has no metadata, kOfxPropOrphan has no definition
	// PV02: SetA.kOfxPropGhost
	// PV03: kOfxPropOrphan
	// PV04: warning only
	assert.Equal(t, 4, report.ErrorCount())
	assert.Equal(t, 1, report.Count(lint.SeverityWarning))

	byRule := map[string]int{}
	for _, res := range report.Results {
		byRule[res.Rule.ID] = res.Errors()
	}
	assert.Equal(t, map[string]int{"PV01": 2, "PV02": 1, "PV03": 1, "PV04": 0}, byRule)

	out := logs.String()
	assert.Contains(t, out, "No YAML metadata found for kOfxPropFooo")
	assert.Contains(t, out, "Prop kOfxPropOrphan not used in any prop set")
	assert.Contains(t, out, "level=WARN")
}

func TestAnalyzerSuggestionIsLogged(t *testing.T) {
	cat := parse(t, `
properties:
  kOfxPropFoo: {type: int, dimension: 1, writable: host}
propertySets:
  SetA: {props: [kOfxPropFoo]}
`)
	logger, logs := testutil.NewCaptureLogger(t)

	report := lint.NewAnalyzer(nil, logger).Analyze(lint.NewContext(cat, names("kOfxPropFooo")))
	assert.Equal(t, 2, report.ErrorCount())
	assert.Contains(t, logs.String(), "Did you mean: kOfxPropFooo")
	assert.Contains(t, logs.String(), "level=INFO")
}
