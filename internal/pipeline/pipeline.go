// Package pipeline orchestrates standards assembly: rule matching, the
// conditional AI fallback, per-module content generation, and the final
// priority merge. Every invocation recomputes its result from current
// inputs; all inputs are treated as read-only and outputs are freshly
// allocated, so a Pipeline is safe for concurrent use.
package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/standards-cli/internal/advisor"
	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/matcher"
	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/internal/tabular"
)

// TableSource supplies the tabular record sets contributing to a module:
// the master catalog table first, then any uploaded tables.
type TableSource interface {
	TablesForModule(ctx context.Context, module string) ([]*model.Table, error)
}

// ModuleContent is the generated row set for one target module, with
// source attribution: which contributing source supplied how many rows
// before the final dedup.
type ModuleContent struct {
	Module      string                `json:"module"`
	Table       *model.Table          `json:"table"`
	Counts      []tabular.SourceCount `json:"counts"`
	Attribution string                `json:"attribution"`
}

// Result is the full output of one assembly run.
type Result struct {
	Matches []model.ResolvedMatch `json:"matches"`
	Summary Summary               `json:"summary"`
	Modules []ModuleContent       `json:"modules"`
}

// Pipeline wires the catalog, the advisor, and the table repository.
type Pipeline struct {
	cat    *catalog.Catalog
	adv    *advisor.Advisor
	tables TableSource
	filter tabular.FilterConfig
}

// New creates a Pipeline. The advisor and table source may be nil, which
// disables the AI fallback and module content generation respectively.
func New(cat *catalog.Catalog, adv *advisor.Advisor, tables TableSource, filter tabular.FilterConfig) *Pipeline {
	return &Pipeline{cat: cat, adv: adv, tables: tables, filter: filter}
}

// Run assembles standards for the profile. Rule matching runs first and is
// authoritative; the AI fallback fires only when the rule layer produced
// too few matches, and runs concurrently with module content generation.
// Both are joined before the merge. Manual selections participate in the
// merge at the lowest priority.
func (p *Pipeline) Run(ctx context.Context, profile model.Profile, manual []model.MatchResult) (*Result, error) {
	ruleResults := matcher.Match(p.cat.Rules, profile)

	var aiResults []model.MatchResult
	var modules []ModuleContent

	g, gctx := errgroup.WithContext(ctx)

	if p.adv != nil && p.adv.ShouldRecommend(len(ruleResults)) {
		g.Go(func() error {
			// Degrades to nil on any advisor failure.
			aiResults = p.adv.Recommend(gctx, profile, ruleResults, p.cat)
			return nil
		})
	}

	g.Go(func() error {
		var err error
		modules, err = p.generateModules(gctx, profile)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := Merge(p.cat, ruleResults, aiResults, manual)
	summary := Summarize(matches)

	zap.L().Info("assembly complete",
		zap.Int("rule_matches", len(ruleResults)),
		zap.Int("ai_matches", len(aiResults)),
		zap.Int("manual_matches", len(manual)),
		zap.Int("merged", len(matches)),
		zap.Int("modules", len(modules)),
	)

	return &Result{Matches: matches, Summary: summary, Modules: modules}, nil
}

// generateModules produces the merged, deduplicated row set per target
// module: each contributing table is filtered and deduplicated on its own,
// then all sources are concatenated and deduplicated again so identical
// rows contributed by different sources collapse to one.
func (p *Pipeline) generateModules(ctx context.Context, profile model.Profile) ([]ModuleContent, error) {
	if p.tables == nil || len(profile.Modules) == 0 {
		return nil, nil
	}

	var out []ModuleContent
	for _, module := range profile.Modules {
		sources, err := p.tables.TablesForModule(ctx, module)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			zap.L().Warn("no contributing tables for module", zap.String("module", module))
			continue
		}

		filtered := make([]*model.Table, 0, len(sources))
		for _, t := range sources {
			filtered = append(filtered, tabular.Dedupe(tabular.Filter(t, profile, p.filter)))
		}

		merged, counts := tabular.Combine(filtered)
		merged.Module = module

		out = append(out, ModuleContent{
			Module:      module,
			Table:       merged,
			Counts:      counts,
			Attribution: tabular.FormatAttribution(counts),
		})
	}

	return out, nil
}
