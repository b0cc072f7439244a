package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchName(t *testing.T) {
	names := []string{"profile", "prefs", "progress"}

	tests := []struct {
		name     string
		prefix   string
		want     string
		errorMsg string
	}{
		{name: "exact match", prefix: "prefs", want: "prefs"},
		{name: "exact match case insensitive", prefix: "PROFILE", want: "profile"},
		{name: "unique prefix pre matches prefs", prefix: "pre", want: "prefs"},
		{name: "unique prefix prof matches profile", prefix: "prof", want: "profile"},
		{name: "ambiguous prefix pro", prefix: "pro", errorMsg: "ambiguous record \"pro\" matches: profile, progress"},
		{name: "ambiguous prefix p", prefix: "p", errorMsg: "ambiguous record"},
		{name: "no match", prefix: "inventory", errorMsg: "record inventory not found"},
		{name: "empty prefix", prefix: "", errorMsg: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchName("record", tt.prefix, names)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchNameNotFoundType(t *testing.T) {
	_, err := MatchName("field", "colour", []string{"level", "name"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "field", nf.Type)
	assert.Equal(t, "colour", nf.ID)
}
