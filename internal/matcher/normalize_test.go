package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize("", false))
	assert.Equal(t, "", Normalize("   ", false))
}

func TestNormalize_TrimAndCollapse(t *testing.T) {
	assert.Equal(t, "quality check", Normalize("  Quality   Check  ", false))
}

func TestNormalize_SeparatorRuns(t *testing.T) {
	assert.Equal(t, "project type", Normalize("project_type", false))
	assert.Equal(t, "project type", Normalize("Project-Type", false))
	assert.Equal(t, "project type", Normalize("project -_ type", false))
}

func TestNormalize_CaseSensitive(t *testing.T) {
	assert.Equal(t, "Quality Check", Normalize("Quality  Check", true))
	assert.Equal(t, "quality check", Normalize("Quality  Check", false))
}

func TestNormalize_FullWidthFold(t *testing.T) {
	// Full-width letters and digits fold to their half-width forms.
	assert.Equal(t, "qc-001"[:2], Normalize("ＱＣ", false))
	assert.Equal(t, "123", Normalize("１２３", false))
}

func TestNormalize_CJKPreserved(t *testing.T) {
	assert.Equal(t, "住宅", Normalize(" 住宅 ", false))
	assert.Equal(t, "工序 验收", Normalize("工序_验收", false))
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	got := NormalizeAll([]string{" A ", "b_c"}, false)
	assert.Equal(t, []string{"a", "b c"}, got)
}
