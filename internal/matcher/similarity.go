package matcher

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// DefaultSimilarityThreshold is the fuzzy-match cutoff used by the content
// filter when full containment fails. Tunable via config; false positives
// and negatives are expected at the boundary.
const DefaultSimilarityThreshold = 0.7

// Similarity scores how close two normalized strings are, in [0, 1] with
// 1.0 meaning identical: 1 - distance/max(len), where distance is the
// Levenshtein distance over runes with unit costs. Two empty strings are
// identical by definition.
func Similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	dist := levenshtein.Distance(a, b, nil)
	return 1.0 - float64(dist)/float64(maxLen)
}
