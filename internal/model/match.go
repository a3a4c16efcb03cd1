package model

// Source tags where a match came from.
type Source string

// Match sources, in descending merge priority.
const (
	SourceRule   Source = "rule"
	SourceAI     Source = "ai"
	SourceManual Source = "manual"
)

// sourcePriority ranks sources for merge conflict resolution. Higher wins.
var sourcePriority = map[Source]int{
	SourceRule:   3,
	SourceAI:     2,
	SourceManual: 1,
}

// Priority returns the merge priority of the source. Unknown sources rank
// below every known source.
func (s Source) Priority() int {
	return sourcePriority[s]
}

// MatchResult records that a standard was selected for inclusion, with
// provenance: which source produced it, the originating rule if any, and a
// human-readable reason.
type MatchResult struct {
	StandardID string `json:"standard_id"`
	Source     Source `json:"source"`
	RuleID     string `json:"rule_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// ResolvedMatch joins a surviving MatchResult with its catalog item. Item
// is nil when the id did not resolve against the loaded catalog.
type ResolvedMatch struct {
	MatchResult
	Item *StandardItem `json:"item,omitempty"`
}
