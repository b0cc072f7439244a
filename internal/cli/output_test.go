package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/jacksmith/keep/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	// A regular file is never a terminal
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	assert.Equal(t, "\033[32mtest\033[0m", Green("test"))
	assert.Equal(t, "\033[31mtest\033[0m", Red("test"))
	assert.Equal(t, "\033[33mtest\033[0m", Yellow("test"))
	assert.Equal(t, "\033[90mtest\033[0m", Gray("test"))
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)

	assert.Equal(t, "test", Green("test"))
	assert.Equal(t, "test", Red("test"))
	assert.Equal(t, "test", Yellow("test"))
	assert.Equal(t, "test", Gray("test"))
	assert.False(t, ColorEnabled())
}

func TestTable(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		NewTable().Render(&buf)
		assert.Equal(t, "", buf.String())
	})

	t.Run("columns align", func(t *testing.T) {
		table := NewTable()
		table.AddRow("profile", "[loaded]", "/data/profile")
		table.AddRow("prefs", "[missing]", "/data/prefs")

		var buf bytes.Buffer
		table.Render(&buf)

		expected := "profile  [loaded]   /data/profile\n" +
			"prefs    [missing]  /data/prefs\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("colored cells align by visible width", func(t *testing.T) {
		SetColorEnabled(true)
		defer SetColorEnabled(false)

		table := NewTable()
		table.AddRow(Green("ok"), "a")
		table.AddRow("failed", "b")

		var buf bytes.Buffer
		table.Render(&buf)
		assert.Equal(t, "\033[32mok\033[0m      a\nfailed  b\n", buf.String())
	})

	t.Run("last column is truncated", func(t *testing.T) {
		table := NewTable()
		table.MaxLast = 8
		table.AddRow("bio:", "a very long biography")

		var buf bytes.Buffer
		table.Render(&buf)
		assert.Equal(t, "bio:  a ver...\n", buf.String())
	})
}

func TestRenderFields(t *testing.T) {
	SetColorEnabled(false)

	var buf bytes.Buffer
	RenderFields(&buf, model.Profile{Level: 5, Name: "ada", Bio: "one\ntwo"}.Fields())
	expected := "level:  5\n" +
		"name:   ada\n" +
		"bio:    one\\ntwo\n"
	assert.Equal(t, expected, buf.String())

	buf.Reset()
	RenderFields(&buf, model.Profile{Level: 1, Name: "guest"}.Fields())
	assert.Contains(t, buf.String(), "bio:    -\n")
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31mred\033[0m and \033[32mgreen\033[0m", 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, visibleWidth(tt.input), "input %q", tt.input)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut with ellipsis", "hello world", 8, "hello..."},
		{"zero width", "hello", 0, ""},
		{"narrower than ellipsis", "hello", 2, "he"},
		{"ansi preserved", "\033[32mhello world\033[0m", 8, "\033[32mhello...\033[0m"},
		{"short colored text untouched", "\033[32mok\033[0m", 5, "\033[32mok\033[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.max))
		})
	}
}
