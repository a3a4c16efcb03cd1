package model

// Priority levels for a standard item.
const (
	PriorityMandatory   = "mandatory"
	PriorityRecommended = "recommended"
)

// StandardItem is one addressable compliance/checklist entry in the master
// catalog. Items are loaded once per invocation and treated as read-only;
// identity is the ID.
type StandardItem struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category" yaml:"category"`
	Industries   []string `json:"industries" yaml:"industries"`
	ProjectTypes []string `json:"project_types" yaml:"project_types"`
	Priority     string   `json:"priority" yaml:"priority"`
	Description  string   `json:"description" yaml:"description"`
	Source       string   `json:"source" yaml:"source"`
}

// Rule maps profile conditions to a set of standard items to include.
// An empty Industries or ProjectTypes slice is a wildcard on that axis.
type Rule struct {
	ID           string   `json:"id" yaml:"id"`
	Industries   []string `json:"industries" yaml:"industries"`
	ProjectTypes []string `json:"project_types" yaml:"project_types"`
	Include      []string `json:"include" yaml:"include"`
}

// SemanticDescription is free-text prompt material for one standard:
// a narrative plus applicable / not-recommended scenario bullets. The
// StandardID is not required to resolve to a catalog item; descriptions
// are never used to filter or exclude.
type SemanticDescription struct {
	StandardID     string   `json:"standard_id" yaml:"standard_id"`
	Content        string   `json:"content" yaml:"content"`
	Applicable     []string `json:"applicable" yaml:"applicable"`
	NotRecommended []string `json:"not_recommended" yaml:"not_recommended"`
}
