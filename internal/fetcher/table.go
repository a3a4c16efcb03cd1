// Package fetcher parses spreadsheet files (XLSX, CSV) into tabular record
// sets for the pipeline.
package fetcher

import (
	"fmt"
	"strings"

	"github.com/sells-group/standards-cli/internal/matcher"
	"github.com/sells-group/standards-cli/internal/model"
)

// buildTable assembles a Table from a header row and data rows. Canonical
// keys are derived from the original headers; a blank header falls back to
// a positional key so keys and headers stay aligned.
func buildTable(name, module string, header []string, records [][]string) *model.Table {
	t := &model.Table{
		Name:    name,
		Module:  module,
		Keys:    make([]string, len(header)),
		Headers: append([]string(nil), header...),
	}

	for i, h := range header {
		t.Keys[i] = canonicalKey(h, i)
	}

	for _, record := range records {
		row := make(model.Row, len(t.Keys))
		for i, key := range t.Keys {
			if i < len(record) {
				row[key] = strings.TrimSpace(record[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// canonicalKey normalizes a header into a stable column key.
func canonicalKey(header string, pos int) string {
	key := matcher.Normalize(header, false)
	if key == "" {
		return fmt.Sprintf("col_%d", pos)
	}
	return strings.ReplaceAll(key, " ", "_")
}
