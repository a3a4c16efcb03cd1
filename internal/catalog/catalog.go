// Package catalog loads and indexes the static standards catalog: standard
// items, inclusion rules, and semantic descriptions. Everything is loaded
// once per pipeline invocation and treated as read-only for the run.
package catalog

import (
	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/model"
)

// Catalog holds the loaded standard items, rules, and semantic
// descriptions, with an id index over the items.
type Catalog struct {
	Standards    []model.StandardItem
	Rules        []model.Rule
	Descriptions []model.SemanticDescription

	byID map[string]*model.StandardItem
}

// New builds a Catalog and indexes standards by id. Duplicate ids violate
// the catalog invariant; the first occurrence is kept and later ones are
// logged and skipped.
func New(standards []model.StandardItem, rules []model.Rule, descriptions []model.SemanticDescription) *Catalog {
	c := &Catalog{
		Rules:        rules,
		Descriptions: descriptions,
		byID:         make(map[string]*model.StandardItem, len(standards)),
	}

	for _, s := range standards {
		if _, ok := c.byID[s.ID]; ok {
			zap.L().Warn("catalog: duplicate standard id, keeping first", zap.String("id", s.ID))
			continue
		}
		c.Standards = append(c.Standards, s)
		c.byID[s.ID] = &c.Standards[len(c.Standards)-1]
	}

	// Re-point the index in case appends relocated the backing array.
	for i := range c.Standards {
		c.byID[c.Standards[i].ID] = &c.Standards[i]
	}

	return c
}

// Item looks up a standard by id.
func (c *Catalog) Item(id string) (*model.StandardItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Has reports whether the catalog contains a standard with the given id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}
