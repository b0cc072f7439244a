package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, Profile{}, Default[Profile]())
	assert.Equal(t, Preferences{}, Default[Preferences]())
}

func TestNewDefault(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		p := NewDefault[Profile]()
		assert.Equal(t, Profile{Level: 1, Name: "guest"}, p)
	})

	t.Run("preferences", func(t *testing.T) {
		p := NewDefault[Preferences]()
		assert.Equal(t, "en", p.Language)
		assert.Equal(t, 0.8, p.Volume)
		assert.False(t, p.Muted)
		assert.Equal(t, DifficultyNormal, p.Difficulty)
	})
}

func TestSetDefaultDataIsIdempotent(t *testing.T) {
	p := Profile{Level: 42, Name: "someone", Bio: "long story"}
	p.SetDefaultData()
	first := p
	p.SetDefaultData()
	assert.Equal(t, first, p)
	assert.Equal(t, Profile{Level: 1, Name: "guest"}, p)

	var prefs Preferences
	prefs.SetDefaultData()
	again := prefs
	again.SetDefaultData()
	assert.Equal(t, prefs, again)
}

func TestProfileSetField(t *testing.T) {
	t.Run("sets each field", func(t *testing.T) {
		p := NewDefault[Profile]()
		require.NoError(t, p.SetField("level", "5"))
		require.NoError(t, p.SetField("Name", "ada"))
		require.NoError(t, p.SetField("BIO", "line one\nline two"))

		assert.Equal(t, Profile{Level: 5, Name: "ada", Bio: "line one\nline two"}, p)
	})

	t.Run("non-integer level is rejected", func(t *testing.T) {
		p := NewDefault[Profile]()
		err := p.SetField("level", "five")
		require.Error(t, err)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "level", fe.Field)
		assert.Equal(t, 1, p.Level)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		p := NewDefault[Profile]()
		err := p.SetField("color", "red")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown field")
	})
}

func TestProfileFields(t *testing.T) {
	p := Profile{Level: 7, Name: "ada"}
	assert.Equal(t, []Field{
		{Name: "level", Value: "7"},
		{Name: "name", Value: "ada"},
		{Name: "bio", Value: ""},
	}, p.Fields())
}

func TestPreferencesSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		check   func(t *testing.T, p Preferences)
		wantErr string
	}{
		{
			name:  "volume",
			field: "volume",
			value: "0.25",
			check: func(t *testing.T, p Preferences) { assert.Equal(t, 0.25, p.Volume) },
		},
		{
			name:  "muted",
			field: "muted",
			value: "true",
			check: func(t *testing.T, p Preferences) { assert.True(t, p.Muted) },
		},
		{
			name:  "difficulty is lowercased",
			field: "difficulty",
			value: "HARD",
			check: func(t *testing.T, p Preferences) { assert.Equal(t, DifficultyHard, p.Difficulty) },
		},
		{
			name:    "bad volume",
			field:   "volume",
			value:   "loud",
			wantErr: "volume must be a number",
		},
		{
			name:    "bad muted",
			field:   "muted",
			value:   "maybe",
			wantErr: "muted must be true or false",
		},
		{
			name:    "unknown",
			field:   "theme",
			value:   "dark",
			wantErr: "unknown field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDefault[Preferences]()
			err := p.SetField(tt.field, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestPreferencesFields(t *testing.T) {
	p := NewDefault[Preferences]()
	assert.Equal(t, []Field{
		{Name: "language", Value: "en"},
		{Name: "volume", Value: "0.8"},
		{Name: "muted", Value: "false"},
		{Name: "difficulty", Value: "normal"},
	}, p.Fields())
}
