package pipeline

import (
	"sort"

	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/model"
)

// Summary aggregates a merged match list.
type Summary struct {
	Total      int                  `json:"total"`
	BySource   map[model.Source]int `json:"by_source"`
	ByCategory map[string]int       `json:"by_category"`
	Unresolved int                  `json:"unresolved"`
}

// Merge combines matches from all sources into one list with exactly one
// entry per standard id. When the same id arrives from several sources the
// entry with the higher source priority wins; on equal priority the first
// seen is kept. The result is sorted by source priority descending, then
// id ascending, and each entry is joined with its catalog item. Ids the
// catalog does not know pass through with a nil item.
func Merge(cat *catalog.Catalog, rule, ai, manual []model.MatchResult) []model.ResolvedMatch {
	all := make([]model.MatchResult, 0, len(rule)+len(ai)+len(manual))
	all = append(all, rule...)
	all = append(all, ai...)
	all = append(all, manual...)

	best := make(map[string]model.MatchResult, len(all))
	var order []string
	for _, m := range all {
		kept, ok := best[m.StandardID]
		if !ok {
			best[m.StandardID] = m
			order = append(order, m.StandardID)
			continue
		}
		if m.Source.Priority() > kept.Source.Priority() {
			best[m.StandardID] = m
		}
	}

	merged := make([]model.ResolvedMatch, 0, len(order))
	for _, id := range order {
		m := best[id]
		rm := model.ResolvedMatch{MatchResult: m}
		if item, ok := cat.Item(id); ok {
			rm.Item = item
		}
		merged = append(merged, rm)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		pi, pj := merged[i].Source.Priority(), merged[j].Source.Priority()
		if pi != pj {
			return pi > pj
		}
		return merged[i].StandardID < merged[j].StandardID
	})

	return merged
}

// Summarize counts a merged match list by source and category.
func Summarize(matches []model.ResolvedMatch) Summary {
	s := Summary{
		Total:      len(matches),
		BySource:   make(map[model.Source]int),
		ByCategory: make(map[string]int),
	}
	for _, m := range matches {
		s.BySource[m.Source]++
		if m.Item == nil {
			s.Unresolved++
			continue
		}
		if m.Item.Category != "" {
			s.ByCategory[m.Item.Category]++
		}
	}
	return s
}
