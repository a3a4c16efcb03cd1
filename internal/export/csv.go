// Package export renders assembly results for downstream consumption as
// CSV or Markdown. ZIP and Excel serialization are owned by the calling
// application layer.
package export

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/internal/pipeline"
)

// WriteMatchesCSV writes the merged match list as CSV with provenance
// columns. Unresolved matches emit their id with empty item columns.
func WriteMatchesCSV(w io.Writer, matches []model.ResolvedMatch) error {
	cw := csv.NewWriter(w)

	header := []string{"standard_id", "name", "category", "priority", "source", "rule_id", "reason"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, m := range matches {
		record := []string{m.StandardID, "", "", "", string(m.Source), m.RuleID, m.Reason}
		if m.Item != nil {
			record[1] = m.Item.Name
			record[2] = m.Item.Category
			record[3] = m.Item.Priority
		}
		if err := cw.Write(record); err != nil {
			return eris.Wrap(err, "export: write csv record")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// WriteModuleCSV writes one generated module table as CSV, using the
// original header labels with the canonical key as fallback.
func WriteModuleCSV(w io.Writer, content pipeline.ModuleContent) error {
	cw := csv.NewWriter(w)

	t := content.Table
	header := make([]string, len(t.Keys))
	for i, key := range t.Keys {
		header[i] = t.HeaderFor(key)
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write module header")
	}

	for _, row := range t.Rows {
		record := make([]string, len(t.Keys))
		for i, key := range t.Keys {
			record[i] = row[key]
		}
		if err := cw.Write(record); err != nil {
			return eris.Wrap(err, "export: write module record")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush module csv")
}
