// Package matcher implements the deterministic matching layer: text
// normalization, edit-distance similarity, and declarative rule evaluation.
package matcher

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// separatorRuns matches runs of whitespace, hyphens, and underscores that
// normalization collapses into a single space.
var separatorRuns = regexp.MustCompile(`[\s\-_]+`)

// Normalize canonicalizes a raw field value for comparison: full-width
// forms are folded to their half-width equivalents, runs of whitespace,
// hyphens, and underscores collapse to single spaces, and the result is
// trimmed. Unless caseSensitive is set, the result is lowercased. Total
// function: empty in, empty out.
func Normalize(s string, caseSensitive bool) string {
	s = width.Fold.String(s)
	s = separatorRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// NormalizeAll normalizes every value in a slice, preserving order.
func NormalizeAll(values []string, caseSensitive bool) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Normalize(v, caseSensitive)
	}
	return out
}
