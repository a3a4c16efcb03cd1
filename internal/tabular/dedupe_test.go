package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standards-cli/internal/model"
)

func TestDedupe_FirstOccurrenceWins(t *testing.T) {
	table := &model.Table{
		Keys: []string{"name", "industry"},
		Rows: []model.Row{
			{"name": "X", "industry": "住宅"},
			{"name": "Y", "industry": "商业"},
			{"name": "X", "industry": "住宅"},
		},
	}

	got := Dedupe(table)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "X", got.Rows[0]["name"])
	assert.Equal(t, "Y", got.Rows[1]["name"])
}

func TestDedupe_Idempotent(t *testing.T) {
	table := &model.Table{
		Keys: []string{"a"},
		Rows: []model.Row{
			{"a": "1"},
			{"a": "1"},
			{"a": "2"},
		},
	}

	once := Dedupe(table)
	twice := Dedupe(once)

	assert.Equal(t, once.Rows, twice.Rows)
	assert.LessOrEqual(t, len(once.Rows), len(table.Rows))
}

func TestDedupe_DistinctValuesSurvive(t *testing.T) {
	table := &model.Table{
		Keys: []string{"a", "b"},
		Rows: []model.Row{
			{"a": "1", "b": "2"},
			{"a": "1", "b": "3"},
		},
	}

	assert.Len(t, Dedupe(table).Rows, 2)
}

func TestDedupe_SignatureUsesColumnOrder(t *testing.T) {
	// Values swapped across columns are different records.
	table := &model.Table{
		Keys: []string{"a", "b"},
		Rows: []model.Row{
			{"a": "x", "b": "y"},
			{"a": "y", "b": "x"},
		},
	}

	assert.Len(t, Dedupe(table).Rows, 2)
}

func TestDedupe_EmptyTable(t *testing.T) {
	got := Dedupe(&model.Table{Keys: []string{"a"}})
	assert.Empty(t, got.Rows)
}
