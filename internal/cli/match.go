// Package cli provides terminal output, editor and name matching helpers
// for the keep CLI.
package cli

import (
	"fmt"
	"strings"
)

// MatchName resolves a possibly abbreviated name against names.
// An exact (case-insensitive) match wins; otherwise the prefix must be
// unique. kind names what is being matched in errors, e.g. "record".
func MatchName(kind, prefix string, names []string) (string, error) {
	lower := strings.ToLower(prefix)

	var matches []string
	for _, name := range names {
		n := strings.ToLower(name)
		if n == lower {
			return name, nil
		}
		if lower != "" && strings.HasPrefix(n, lower) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Type: kind, ID: prefix}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", kind, prefix, strings.Join(matches, ", "))
	}
}
