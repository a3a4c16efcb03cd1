package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/advisor"
	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/pipeline"
	"github.com/sells-group/standards-cli/internal/store"
	"github.com/sells-group/standards-cli/pkg/anthropic"
)

// env bundles the wired pipeline and its owned resources.
type env struct {
	Catalog  *catalog.Catalog
	Store    store.Store
	Pipeline *pipeline.Pipeline
}

// initEnv loads the catalog, opens the table store, and wires the
// pipeline. A missing Anthropic key only disables the advisor — the rule
// and filter layers must keep working without it.
func initEnv(ctx context.Context) (*env, error) {
	cat, err := catalog.LoadDir(cfg.Catalog.Dir)
	if err != nil {
		return nil, err
	}

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}

	var adv *advisor.Advisor
	if cfg.Advisor.Enabled {
		if cfg.Advisor.Key == "" {
			zap.L().Warn("advisor enabled but no anthropic key configured, AI fallback disabled")
		} else {
			adv = advisor.New(anthropic.NewClient(cfg.Advisor.Key), cfg.Advisor)
		}
	}

	return &env{
		Catalog:  cat,
		Store:    st,
		Pipeline: pipeline.New(cat, adv, st, cfg.Filter),
	}, nil
}

// Close releases env resources.
func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}
