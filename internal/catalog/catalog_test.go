package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standards-cli/internal/model"
)

func TestNew_IndexesByID(t *testing.T) {
	cat := New([]model.StandardItem{
		{ID: "QC-001", Name: "rebar spacing"},
		{ID: "QC-002", Name: "concrete curing"},
	}, nil, nil)

	item, ok := cat.Item("QC-002")
	require.True(t, ok)
	assert.Equal(t, "concrete curing", item.Name)

	_, ok = cat.Item("QC-404")
	assert.False(t, ok)
}

func TestNew_DuplicateIDKeepsFirst(t *testing.T) {
	cat := New([]model.StandardItem{
		{ID: "QC-001", Name: "first"},
		{ID: "QC-001", Name: "second"},
	}, nil, nil)

	assert.Len(t, cat.Standards, 1)
	item, _ := cat.Item("QC-001")
	assert.Equal(t, "first", item.Name)
}

func TestHas(t *testing.T) {
	cat := New([]model.StandardItem{{ID: "QC-001"}}, nil, nil)

	assert.True(t, cat.Has("QC-001"))
	assert.False(t, cat.Has("QC-002"))
}

func TestLoadStandards_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standards.yaml")
	data := `
- id: QC-001
  name: rebar spacing
  category: process
  industries: [房地产业]
  project_types: [住宅]
  priority: mandatory
  description: spacing checks for rebar
  source: master
- id: QC-002
  name: concrete curing
  priority: recommended
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	standards, err := LoadStandards(path)

	require.NoError(t, err)
	require.Len(t, standards, 2)
	assert.Equal(t, "QC-001", standards[0].ID)
	assert.Equal(t, []string{"房地产业"}, standards[0].Industries)
	assert.Equal(t, model.PriorityMandatory, standards[0].Priority)
}

func TestLoadRules_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := `
- id: R1
  industries: []
  project_types: []
  include: [QC-001, QC-002]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	rules, err := LoadRules(path)

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Empty(t, rules[0].Industries)
	assert.Equal(t, []string{"QC-001", "QC-002"}, rules[0].Include)
}

func TestLoadStandards_MissingFile(t *testing.T) {
	_, err := LoadStandards(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDir_OptionalFiles(t *testing.T) {
	dir := t.TempDir()
	standards := `
- id: QC-001
  name: rebar spacing
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standards.yaml"), []byte(standards), 0o644))

	cat, err := LoadDir(dir)

	require.NoError(t, err)
	assert.True(t, cat.Has("QC-001"))
	assert.Empty(t, cat.Rules)
	assert.Empty(t, cat.Descriptions)
}

func TestLoadDir_AllFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standards.yaml"),
		[]byte("- id: QC-001\n  name: rebar spacing\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"),
		[]byte("- id: R1\n  include: [QC-001]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "descriptions.yaml"),
		[]byte("- standard_id: QC-001\n  content: spacing checks\n  applicable: [high-rise]\n"), 0o644))

	cat, err := LoadDir(dir)

	require.NoError(t, err)
	require.Len(t, cat.Rules, 1)
	require.Len(t, cat.Descriptions, 1)
	assert.Equal(t, []string{"high-rise"}, cat.Descriptions[0].Applicable)
}
