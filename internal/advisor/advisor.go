// Package advisor implements the AI fallback recommender. It only runs
// when deterministic rule matching produced too few results, and its
// output is strictly additive: it never removes or overrides a rule match.
// Any failure degrades to an empty recommendation list — the pipeline must
// not fail because the optional AI layer is unavailable.
package advisor

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/catalog"
	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/pkg/anthropic"
)

// Config configures the advisor.
type Config struct {
	Enabled        bool   `yaml:"enabled" mapstructure:"enabled"`
	Key            string `yaml:"key" mapstructure:"key"`
	Model          string `yaml:"model" mapstructure:"model"`
	MaxTokens      int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	MinRuleMatches int    `yaml:"min_rule_matches" mapstructure:"min_rule_matches"`
	TimeoutSecs    int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// Advisor recommends additional standards via a Claude completion.
type Advisor struct {
	client anthropic.Client
	cfg    Config
}

// New creates an Advisor from a client and config.
func New(client anthropic.Client, cfg Config) *Advisor {
	return &Advisor{client: client, cfg: cfg}
}

// ShouldRecommend reports whether the fallback should run: the advisor is
// enabled and the deterministic layer produced fewer matches than the
// configured minimum. The rule layer is authoritative and always tried
// first.
func (a *Advisor) ShouldRecommend(ruleMatches int) bool {
	return a.cfg.Enabled && ruleMatches < a.cfg.MinRuleMatches
}

// Recommend builds the prompt, performs one completion request, and parses
// the response into MatchResults tagged ai. Configuration and transport
// errors are logged and degrade to an empty list; there is no retry. The
// call is bounded by the configured timeout so a hung request cannot stall
// the overall run.
func (a *Advisor) Recommend(ctx context.Context, profile model.Profile, existing []model.MatchResult, cat *catalog.Catalog) []model.MatchResult {
	if a.client == nil {
		zap.L().Warn("advisor: no client configured, skipping recommendation")
		return nil
	}

	if a.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	prompt := BuildPrompt(profile, existing, cat.Descriptions)

	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     a.cfg.Model,
		MaxTokens: a.cfg.MaxTokens,
		System:    systemPrompt,
		Messages:  []anthropic.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		zap.L().Warn("advisor: recommendation failed, continuing without AI results",
			zap.Error(eris.Wrap(err, "advisor: create message")),
		)
		return nil
	}

	resp.Usage.LogUsage(a.cfg.Model, "advisor")

	results := ParseResponse(resp.Text, cat)
	zap.L().Info("advisor recommendation complete",
		zap.Int("existing_matches", len(existing)),
		zap.Int("recommended", len(results)),
	)
	return results
}
