package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		in   map[string][]string
		want map[string][]string
	}{
		{
			name: "no references is identity minus definitions",
			in: map[string][]string{
				"SetA":    {"a", "b", "a"},
				"SetB":    {},
				"Lst_DEF": {"x"},
			},
			want: map[string][]string{
				"SetA": {"a", "b", "a"},
				"SetB": {},
			},
		},
		{
			name: "reference splices in place",
			in: map[string][]string{
				"X_DEF": {"a", "b"},
				"SetA":  {"first", "X_REF", "last"},
			},
			want: map[string][]string{
				"SetA": {"first", "a", "b", "last"},
			},
		},
		{
			name: "duplicates are kept",
			in: map[string][]string{
				"X_DEF": {"a", "b"},
				"SetA":  {"a", "X_REF", "X_REF"},
			},
			want: map[string][]string{
				"SetA": {"a", "a", "b", "a", "b"},
			},
		},
		{
			name: "empty definition removes the reference",
			in: map[string][]string{
				"X_DEF": {},
				"SetA":  {"X_REF", "a"},
			},
			want: map[string][]string{
				"SetA": {"a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Errors(t *testing.T) {
	_, err := Expand(map[string][]string{"SetA": {"Nope_REF"}})
	require.ErrorIs(t, err, ErrUnresolvedRef)
	assert.Contains(t, err.Error(), "Nope_DEF")

	_, err = Expand(map[string][]string{
		"A_DEF": {"B_REF"},
		"B_DEF": {"a"},
		"SetA":  {"A_REF"},
	})
	require.ErrorIs(t, err, ErrNestedRef)
}

func TestSuffixHelpers(t *testing.T) {
	assert.True(t, IsDefinition("ParamsCommon_DEF"))
	assert.False(t, IsDefinition("ParamsCommon"))
	assert.True(t, IsReference("ParamsCommon_REF"))
	assert.Equal(t, "ParamsCommon_DEF", DefinitionFor("ParamsCommon_REF"))
	assert.Equal(t, "A_REF_B_DEF", DefinitionFor("A_REF_B_REF"))
}
