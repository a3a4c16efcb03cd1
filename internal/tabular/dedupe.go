package tabular

import "github.com/sells-group/standards-cli/internal/model"

// Dedupe drops rows whose content signature was already seen, keeping the
// first occurrence. Order-preserving and purely structural: two rows with
// identical values in column order are the same logical record, whatever
// their source. The input table is not mutated.
func Dedupe(t *model.Table) *model.Table {
	out := &model.Table{
		Name:    t.Name,
		Module:  t.Module,
		Keys:    t.Keys,
		Headers: t.Headers,
	}

	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		sig := t.Signature(row)
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		out.Rows = append(out.Rows, row)
	}

	return out
}
