package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMember(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Member
		wantErr bool
	}{
		{
			name:  "plain name",
			token: "kOfxPropX",
			want:  Member{Name: "kOfxPropX"},
		},
		{
			name:  "single option",
			token: "kOfxPropX | writable=plugin",
			want:  Member{Name: "kOfxPropX", Options: map[string]string{"writable": "plugin"}},
		},
		{
			name:  "several options with spaces",
			token: "kOfxPropX|write = host , hostOptional=true",
			want:  Member{Name: "kOfxPropX", Options: map[string]string{"write": "host", "hostOptional": "true"}},
		},
		{
			name:  "empty option segment",
			token: "kOfxPropX |",
			want:  Member{Name: "kOfxPropX", Options: map[string]string{}},
		},
		{
			name:  "value may contain equals",
			token: "kOfxPropX | default=a=b",
			want:  Member{Name: "kOfxPropX", Options: map[string]string{"default": "a=b"}},
		},
		{name: "empty name", token: " | a=b", wantErr: true},
		{name: "second pipe", token: "kOfxPropX | a=b | c=d", wantErr: true},
		{name: "option without equals", token: "kOfxPropX | plugin", wantErr: true},
		{name: "name with space", token: "kOfx PropX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMember(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMember)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertySet_Details(t *testing.T) {
	set := &PropertySet{
		Name:     "SetA",
		Defaults: map[string]string{"writable": "host", "hostOptional": "false"},
	}
	for _, tok := range []string{"kOfxPropX | writable=plugin", "kOfxPropY"} {
		m, err := ParseMember(tok)
		require.NoError(t, err)
		set.Members = append(set.Members, m)
	}

	assert.Equal(t, []string{"kOfxPropX", "kOfxPropY"}, set.Names())
	assert.Equal(t, []map[string]string{
		{"writable": "plugin", "hostOptional": "false", "name": "kOfxPropX"},
		{"writable": "host", "hostOptional": "false", "name": "kOfxPropY"},
	}, set.Details())

	// a member option named "name" never overrides the member name
	set.Members = []Member{{Name: "kOfxPropZ", Options: map[string]string{"name": "other"}}}
	assert.Equal(t, "kOfxPropZ", set.Details()[0]["name"])
}
