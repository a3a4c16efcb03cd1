package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVTable(t *testing.T) {
	input := "检查项,适用行业,项目类型\n" +
		"check-a, 住宅 ,住宅\n" +
		"check-b,商业,商业综合体\n"

	table, err := ReadCSVTable(strings.NewReader(input), "upload.csv", "质量管理", CSVOptions{})

	require.NoError(t, err)
	assert.Equal(t, "upload.csv", table.Name)
	assert.Equal(t, "质量管理", table.Module)
	assert.Equal(t, []string{"检查项", "适用行业", "项目类型"}, table.Keys)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "住宅", table.Rows[0]["适用行业"], "cell values are trimmed")
	assert.Equal(t, "商业综合体", table.Rows[1]["项目类型"])
}

func TestReadCSVTable_VariableFieldCounts(t *testing.T) {
	input := "name,industry,notes\n" +
		"check-a,住宅\n" +
		"check-b,商业,extra\n"

	table, err := ReadCSVTable(strings.NewReader(input), "ragged.csv", "质量管理", CSVOptions{})

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0]["notes"], "missing trailing cells stay empty")
	assert.Equal(t, "extra", table.Rows[1]["notes"])
}

func TestReadCSVTable_CustomDelimiter(t *testing.T) {
	input := "name;industry\ncheck-a;住宅\n"

	table, err := ReadCSVTable(strings.NewReader(input), "semi.csv", "质量管理", CSVOptions{Delimiter: ';'})

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "住宅", table.Rows[0]["industry"])
}

func TestReadCSVTable_Empty(t *testing.T) {
	_, err := ReadCSVTable(strings.NewReader(""), "empty.csv", "质量管理", CSVOptions{})
	assert.Error(t, err)
}

func TestBuildTable_BlankHeaderFallsBack(t *testing.T) {
	table := buildTable("t", "m", []string{"Name", "", "Industry Code"}, [][]string{
		{"check-a", "x", "01"},
	})

	assert.Equal(t, []string{"name", "col_1", "industry_code"}, table.Keys)
	assert.Equal(t, "x", table.Rows[0]["col_1"])
	assert.Equal(t, "Industry Code", table.HeaderFor("industry_code"))
}
