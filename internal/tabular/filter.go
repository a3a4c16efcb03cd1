package tabular

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/matcher"
	"github.com/sells-group/standards-cli/internal/model"
)

// cellSeparators split multi-value applicability cells ("住宅、商业" or
// "residential/commercial") into individual values.
var cellSeparators = []string{"、", "，", ",", "；", ";", "/", "｜", "|"}

// Filter retains the rows of t that are applicable to the profile. For
// each axis with both a located column and profile selections, a row
// survives when its cell is blank (wildcard), carries a universal marker,
// or contains — or is fuzzy-similar above the threshold to — at least one
// selected value. Multiple selected values are OR-ed. When the profile has
// no constraints the filter is the identity. The input table is never
// mutated; the returned table references the matched rows in order.
func Filter(t *model.Table, profile model.Profile, cfg FilterConfig) *model.Table {
	out := &model.Table{
		Name:    t.Name,
		Module:  t.Module,
		Keys:    t.Keys,
		Headers: t.Headers,
	}

	if !profile.HasConstraints() {
		out.Rows = append([]model.Row(nil), t.Rows...)
		return out
	}

	plan := ResolvePlan(t, cfg)
	industries := matcher.NormalizeAll(profile.Industries, false)
	projectTypes := matcher.NormalizeAll(profile.ProjectTypes, false)

	for _, row := range t.Rows {
		if !axisApplies(row, plan.IndustryKey, industries, cfg) {
			continue
		}
		if !axisApplies(row, plan.ProjectTypeKey, projectTypes, cfg) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}

	zap.L().Debug("content filter applied",
		zap.String("table", t.Name),
		zap.String("industry_column", plan.IndustryKey),
		zap.String("project_type_column", plan.ProjectTypeKey),
		zap.Int("rows_in", len(t.Rows)),
		zap.Int("rows_out", len(out.Rows)),
	)

	return out
}

// axisApplies checks one axis for one row. The axis imposes no constraint
// when its column was not located or the profile selected nothing on it.
func axisApplies(row model.Row, columnKey string, selected []string, cfg FilterConfig) bool {
	if columnKey == "" || len(selected) == 0 {
		return true
	}

	cell := matcher.Normalize(row[columnKey], false)
	if cell == "" {
		return true
	}

	for _, marker := range cfg.UniversalMarkers {
		if strings.Contains(cell, matcher.Normalize(marker, false)) {
			return true
		}
	}

	for _, want := range selected {
		if want == "" {
			continue
		}
		if strings.Contains(cell, want) {
			return true
		}
		for _, part := range splitCell(cell) {
			if matcher.Similarity(part, want) >= cfg.SimilarityThreshold {
				return true
			}
		}
	}

	return false
}

// splitCell breaks a multi-value cell into trimmed parts.
func splitCell(cell string) []string {
	parts := []string{cell}
	for _, sep := range cellSeparators {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
