package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("residential", "residential"))
}

func TestSimilarity_BothEmpty(t *testing.T) {
	// Defined as identical, not a division by zero.
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("abc", ""))
	assert.Equal(t, 0.0, Similarity("", "abc"))
}

func TestSimilarity_EditDistance(t *testing.T) {
	// kitten -> sitting: 3 edits over max length 7.
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
}

func TestSimilarity_RuneBased(t *testing.T) {
	// One insertion over max rune length 3, not byte length.
	assert.InDelta(t, 1.0-1.0/3.0, Similarity("住宅", "住宅楼"), 1e-9)
}

func TestSimilarity_Range(t *testing.T) {
	score := Similarity("completely", "different")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.Less(t, score, 1.0)
}
