package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/standards-cli/internal/model"
	"github.com/sells-group/standards-cli/pkg/anthropic"
)

// fakeClient implements anthropic.Client for tests.
type fakeClient struct {
	resp    *anthropic.MessageResponse
	err     error
	lastReq anthropic.MessageRequest
	calls   int
}

func (f *fakeClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func enabledConfig() Config {
	return Config{
		Enabled:        true,
		Model:          "claude-haiku-4-5-20251001",
		MaxTokens:      1024,
		MinRuleMatches: 5,
		TimeoutSecs:    5,
	}
}

func TestShouldRecommend_BelowThreshold(t *testing.T) {
	a := New(&fakeClient{}, enabledConfig())

	assert.True(t, a.ShouldRecommend(0))
	assert.True(t, a.ShouldRecommend(4))
	assert.False(t, a.ShouldRecommend(5))
	assert.False(t, a.ShouldRecommend(10))
}

func TestShouldRecommend_Disabled(t *testing.T) {
	cfg := enabledConfig()
	cfg.Enabled = false
	a := New(&fakeClient{}, cfg)

	assert.False(t, a.ShouldRecommend(0))
}

func TestRecommend_ParsesResponse(t *testing.T) {
	client := &fakeClient{resp: &anthropic.MessageResponse{
		Text: "QC-002: fits the selected project types\nQC-003: complements process acceptance",
	}}
	a := New(client, enabledConfig())
	cat := testCatalog("QC-001", "QC-002", "QC-003")

	results := a.Recommend(context.Background(), model.Profile{}, nil, cat)

	require.Len(t, results, 2)
	assert.Equal(t, "QC-002", results[0].StandardID)
	assert.Equal(t, model.SourceAI, results[0].Source)
	assert.Equal(t, 1, client.calls)
}

func TestRecommend_SendsPromptWithDescriptions(t *testing.T) {
	client := &fakeClient{resp: &anthropic.MessageResponse{Text: ""}}
	a := New(client, enabledConfig())
	cat := testCatalog("QC-001")
	cat.Descriptions = []model.SemanticDescription{{StandardID: "QC-001", Content: "rebar spacing"}}

	a.Recommend(context.Background(), model.Profile{Industries: []string{"房地产业"}}, nil, cat)

	require.Len(t, client.lastReq.Messages, 1)
	assert.Contains(t, client.lastReq.Messages[0].Content, "rebar spacing")
	assert.NotEmpty(t, client.lastReq.System)
}

func TestRecommend_TransportErrorDegradesToEmpty(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	a := New(client, enabledConfig())

	results := a.Recommend(context.Background(), model.Profile{}, nil, testCatalog("QC-001"))

	assert.Empty(t, results)
}

func TestRecommend_NilClientDegradesToEmpty(t *testing.T) {
	a := New(nil, enabledConfig())

	assert.Empty(t, a.Recommend(context.Background(), model.Profile{}, nil, testCatalog("QC-001")))
}
