package matcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/model"
)

// Match evaluates every rule against the profile and returns one
// MatchResult per included standard id, tagged with the originating rule.
// A rule matches when each axis is either a wildcard (empty set) or
// intersects the profile's selections under normalized equality; the two
// axes are evaluated independently. The first matching rule to include a
// given id wins — the seen-id set is scoped to the whole matching pass, so
// no duplicate results are emitted. Never fails: an empty rule set or a
// non-matching profile yields an empty list.
func Match(rules []model.Rule, profile model.Profile) []model.MatchResult {
	industries := normalizedSet(profile.Industries)
	projectTypes := normalizedSet(profile.ProjectTypes)

	seen := make(map[string]struct{})
	var results []model.MatchResult

	for _, rule := range rules {
		if !axisMatches(rule.Industries, industries) {
			continue
		}
		if !axisMatches(rule.ProjectTypes, projectTypes) {
			continue
		}

		for _, id := range rule.Include {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			results = append(results, model.MatchResult{
				StandardID: id,
				Source:     model.SourceRule,
				RuleID:     rule.ID,
				Reason:     fmt.Sprintf("included by rule %s", rule.ID),
			})
		}
	}

	zap.L().Debug("rule matching complete",
		zap.Int("rules", len(rules)),
		zap.Int("matches", len(results)),
	)

	return results
}

// axisMatches checks one rule axis against the profile's normalized
// selections. An empty rule set is a wildcard on that axis only.
func axisMatches(ruleValues []string, profileSet map[string]struct{}) bool {
	if len(ruleValues) == 0 {
		return true
	}
	for _, v := range ruleValues {
		if _, ok := profileSet[Normalize(v, false)]; ok {
			return true
		}
	}
	return false
}

func normalizedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[Normalize(v, false)] = struct{}{}
	}
	return set
}
