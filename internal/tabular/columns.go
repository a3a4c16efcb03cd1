// Package tabular implements content-level operations over tabular record
// sets: applicability filtering, structural deduplication, and multi-source
// combination with attribution.
package tabular

import (
	"strings"

	"github.com/sells-group/standards-cli/internal/matcher"
	"github.com/sells-group/standards-cli/internal/model"
)

// FilterConfig tunes applicability filtering. Keyword lists drive column
// detection per axis; universal markers exempt a cell from axis filtering.
type FilterConfig struct {
	IndustryKeywords    []string `yaml:"industry_keywords" mapstructure:"industry_keywords"`
	ProjectTypeKeywords []string `yaml:"project_type_keywords" mapstructure:"project_type_keywords"`
	UniversalMarkers    []string `yaml:"universal_markers" mapstructure:"universal_markers"`
	SimilarityThreshold float64  `yaml:"similarity_threshold" mapstructure:"similarity_threshold"`
}

// DefaultFilterConfig returns the built-in column keywords and fuzzy
// threshold. Catalogs in the wild mix Chinese and English headers, so both
// are covered.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		IndustryKeywords:    []string{"industry", "行业", "适用行业", "适用范围", "scope", "applicability"},
		ProjectTypeKeywords: []string{"project type", "项目类型", "工程类型", "业态", "产品类型"},
		UniversalMarkers:    []string{"通用", "全部", "不限", "all", "general", "common"},
		SimilarityThreshold: matcher.DefaultSimilarityThreshold,
	}
}

// ColumnPlan is the result of resolving applicability columns for one
// table: at most one column per axis. An empty key means the axis was not
// located and imposes no constraint (fail-open).
type ColumnPlan struct {
	IndustryKey    string
	ProjectTypeKey string
}

// ResolvePlan scans a table's keys and original headers once and locates
// the industry-like and project-type-like columns. The first column whose
// key or header contains an axis keyword wins that axis.
func ResolvePlan(t *model.Table, cfg FilterConfig) ColumnPlan {
	var plan ColumnPlan
	for i, key := range t.Keys {
		header := ""
		if i < len(t.Headers) {
			header = t.Headers[i]
		}
		if plan.IndustryKey == "" && columnMatches(key, header, cfg.IndustryKeywords) {
			plan.IndustryKey = key
			continue
		}
		if plan.ProjectTypeKey == "" && columnMatches(key, header, cfg.ProjectTypeKeywords) {
			plan.ProjectTypeKey = key
		}
	}
	return plan
}

func columnMatches(key, header string, keywords []string) bool {
	nk := matcher.Normalize(key, false)
	nh := matcher.Normalize(header, false)
	for _, kw := range keywords {
		n := matcher.Normalize(kw, false)
		if n == "" {
			continue
		}
		if strings.Contains(nk, n) || strings.Contains(nh, n) {
			return true
		}
	}
	return false
}
