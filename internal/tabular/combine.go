package tabular

import (
	"fmt"
	"strings"

	"github.com/sells-group/standards-cli/internal/model"
)

// SourceCount records how many rows a contributing source supplied before
// the final deduplication pass.
type SourceCount struct {
	Source string `json:"source"`
	Rows   int    `json:"rows"`
}

// Combine concatenates already-filtered tables into one and deduplicates
// the result. The first table is the base source: its keys and headers
// define the effective schema of the combined output. Shape inconsistency
// across sources is not an error — signatures and filtering operate
// per-row on whatever keys each row has, so rows from narrower tables
// simply contribute empty cells for missing base columns.
func Combine(tables []*model.Table) (*model.Table, []SourceCount) {
	if len(tables) == 0 {
		return &model.Table{}, nil
	}

	base := tables[0]
	merged := &model.Table{
		Name:    base.Name,
		Module:  base.Module,
		Keys:    base.Keys,
		Headers: base.Headers,
	}

	counts := make([]SourceCount, 0, len(tables))
	for _, t := range tables {
		merged.Rows = append(merged.Rows, t.Rows...)
		counts = append(counts, SourceCount{Source: t.Name, Rows: len(t.Rows)})
	}

	return Dedupe(merged), counts
}

// FormatAttribution renders source counts as a human-readable provenance
// string, e.g. "master: 12 rows; upload-a.xlsx: 3 rows".
func FormatAttribution(counts []SourceCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d rows", c.Source, c.Rows)
	}
	return strings.Join(parts, "; ")
}
