package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standards-cli/internal/model"
)

func TestCombine_BaseSchemaWins(t *testing.T) {
	base := &model.Table{
		Name:    "master",
		Keys:    []string{"name", "industry"},
		Headers: []string{"名称", "适用行业"},
		Rows:    []model.Row{{"name": "a", "industry": "住宅"}},
	}
	upload := &model.Table{
		Name: "upload.xlsx",
		Keys: []string{"name"},
		Rows: []model.Row{{"name": "b"}},
	}

	merged, counts := Combine([]*model.Table{base, upload})

	assert.Equal(t, base.Keys, merged.Keys)
	assert.Equal(t, base.Headers, merged.Headers)
	assert.Len(t, merged.Rows, 2)
	require.Len(t, counts, 2)
	assert.Equal(t, SourceCount{Source: "master", Rows: 1}, counts[0])
	assert.Equal(t, SourceCount{Source: "upload.xlsx", Rows: 1}, counts[1])
}

func TestCombine_CrossSourceDuplicatesCollapse(t *testing.T) {
	// Two uploads contribute the same logical row; exactly one survives.
	row := model.Row{"name": "X", "industry": "住宅"}
	a := &model.Table{Name: "a.xlsx", Keys: []string{"name", "industry"}, Rows: []model.Row{row}}
	b := &model.Table{Name: "b.xlsx", Keys: []string{"name", "industry"}, Rows: []model.Row{{"name": "X", "industry": "住宅"}}}

	merged, counts := Combine([]*model.Table{a, b})

	assert.Len(t, merged.Rows, 1)
	// Attribution reflects pre-dedup contributions.
	assert.Equal(t, 1, counts[0].Rows)
	assert.Equal(t, 1, counts[1].Rows)
}

func TestCombine_Empty(t *testing.T) {
	merged, counts := Combine(nil)
	assert.Empty(t, merged.Rows)
	assert.Nil(t, counts)
}

func TestFormatAttribution(t *testing.T) {
	s := FormatAttribution([]SourceCount{
		{Source: "master", Rows: 12},
		{Source: "upload-a.xlsx", Rows: 3},
	})
	assert.Equal(t, "master: 12 rows; upload-a.xlsx: 3 rows", s)
}
