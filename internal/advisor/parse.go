package advisor

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/model"
)

// linePattern matches one recommendation line: an uppercase id followed by
// a colon and a free-text reason.
var linePattern = regexp.MustCompile(`^([A-Z0-9-]+)\s*:\s*(.+)$`)

// ParseResponse splits a completion into lines and extracts `ID: reason`
// recommendations. Lines that do not match the pattern are skipped, and
// ids unknown to the catalog are dropped — partial catalogs are expected
// during incremental rollout, so neither case is an error.
func ParseResponse(text string, cat *catalog.Catalog) []model.MatchResult {
	var results []model.MatchResult
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		m := linePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		id, reason := m[1], m[2]
		if !cat.Has(id) {
			zap.L().Debug("advisor: dropping unknown standard id", zap.String("id", id))
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		results = append(results, model.MatchResult{
			StandardID: id,
			Source:     model.SourceAI,
			Reason:     reason,
		})
	}

	return results
}
