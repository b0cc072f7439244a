package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/keep/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled is set from terminal detection but can be overridden.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return colorize(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return colorize(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return colorize(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return colorize(colorGray, s) }

// DefaultMaxValueWidth is the widest a field value is shown in a table.
const DefaultMaxValueWidth = 60

// Table formats columnar output. Every column but the last is padded to
// its widest cell; the last column is truncated to MaxLast visible
// characters when MaxLast is positive.
type Table struct {
	MaxLast int

	rows      [][]string
	colWidths []int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		if w := visibleWidth(col); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	last := len(t.colWidths) - 1
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if i == last {
				if t.MaxLast > 0 {
					col = Truncate(col, t.MaxLast)
				}
				parts[i] = col
				continue
			}
			parts[i] = col + strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
}

// RenderFields writes one "name  value" row per field. Multi-line values
// are shown on one line with "\n" escapes; empty values are shown as "-".
func RenderFields(w io.Writer, fields []model.Field) {
	t := NewTable()
	t.MaxLast = DefaultMaxValueWidth
	for _, f := range fields {
		value := strings.ReplaceAll(f.Value, "\n", `\n`)
		if value == "" {
			value = Gray("-")
		}
		t.AddRow(f.Name+":", value)
	}
	t.Render(w)
}

// Truncate returns s cut to maxWidth visible characters with "..." as the
// final three. ANSI escape codes before the cut are kept and a reset is
// appended if any were seen.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	ellipsis := "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		limit, ellipsis = maxWidth, ""
	}

	var b strings.Builder
	visible := 0
	inEscape, hasANSI := false, false
loop:
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasANSI = true, true
			b.WriteRune(r)
		case inEscape:
			b.WriteRune(r)
			inEscape = r != 'm'
		case visible < limit:
			b.WriteRune(r)
			visible++
		default:
			break loop
		}
	}
	b.WriteString(ellipsis)
	if hasANSI {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			inEscape = r != 'm'
		default:
			width++
		}
	}
	return width
}
