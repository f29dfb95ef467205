package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBackend emulates the ollama chat endpoint: it records the prompts it
// receives and answers each with the configured content.
type mockBackend struct {
	mu      sync.Mutex
	prompts []string
	reply   func(prompt string) string
	server  *httptest.Server
}

func newMockBackend(t *testing.T, reply func(prompt string) string) *mockBackend {
	t.Helper()
	mock := &mockBackend{reply: reply}
	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		prompt := req.Messages[len(req.Messages)-1].Content

		mock.mu.Lock()
		mock.prompts = append(mock.prompts, prompt)
		mock.mu.Unlock()

		w.Header().Set("Content-Type", "application/x-ndjson")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":      req.Model,
			"created_at": time.Now().UTC().Format(time.RFC3339),
			"message": map[string]string{
				"role":    "assistant",
				"content": mock.reply(prompt),
			},
			"done": true,
		})
	}))
	t.Cleanup(mock.server.Close)
	return mock
}

func (m *mockBackend) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

func newTestEnricher(t *testing.T, reply func(prompt string) string) (*Enricher, *mockBackend) {
	t.Helper()
	mock := newMockBackend(t, reply)
	client, err := NewClient(Config{
		BackendURL:   mock.server.URL,
		DefaultModel: "test-model",
		Timeout:      10 * time.Second,
	}, slog.Default())
	require.NoError(t, err)
	return NewEnricher(client, slog.Default()), mock
}

func TestClient_GenerateUsesDefaultModel(t *testing.T) {
	mock := newMockBackend(t, func(string) string { return "pong" })
	client, err := NewClient(Config{
		BackendURL:   mock.server.URL,
		DefaultModel: "test-model",
	}, slog.Default())
	require.NoError(t, err)

	response, err := client.Generate(context.Background(), "", "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", response)
	assert.Equal(t, "ping", mock.lastPrompt())
}

func TestSynthesizeTrend(t *testing.T) {
	enricher, mock := newTestEnricher(t, func(string) string {
		return "```json\n" + `{
			"synthesis": "Edge AI moves from pilots to production.",
			"saturated_angles": ["vendor comparisons"],
			"opportunities": ["energy cost analysis", "on-device privacy"]
		}` + "\n```"
	})

	result, err := enricher.SynthesizeTrend(context.Background(), TrendContext{
		Label:         "edge / ai / inference",
		Keywords:      []string{"edge", "ai"},
		Volume:        42,
		Velocity:      1.8,
		VelocityTrend: "accelerating",
		Diversity:     6,
		SampleDocs:    []string{"Edge inference hits the factory floor"},
	})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, "Edge AI moves from pilots to production.", result.Synthesis)
	assert.Equal(t, []string{"vendor comparisons"}, result.SaturatedAngles)
	assert.Len(t, result.Opportunities, 2)
	assert.Equal(t, "test-model", result.ModelUsed)

	prompt := mock.lastPrompt()
	assert.Contains(t, prompt, "edge / ai / inference")
	assert.Contains(t, prompt, "accelerating")
	assert.Contains(t, prompt, "Edge inference hits the factory floor")
}

func TestSynthesizeTrend_DegradesOnUnparseableResponse(t *testing.T) {
	enricher, _ := newTestEnricher(t, func(string) string {
		return "As an analyst I would say this trend looks interesting."
	})

	result, err := enricher.SynthesizeTrend(context.Background(), TrendContext{Label: "x"})
	require.NoError(t, err, "parse failure degrades, it does not error")

	assert.True(t, result.Degraded)
	assert.Contains(t, result.RawResponse, "looks interesting")
	assert.Empty(t, result.Synthesis)
}

func TestGenerateArticleAngles(t *testing.T) {
	enricher, mock := newTestEnricher(t, func(string) string {
		return `{
			"angles": [
				{
					"title": "The hidden cost of edge inference",
					"hook": "Power bills tell the real story.",
					"outline": ["intro", "measurements", "takeaways"],
					"effort_level": "complex",
					"differentiation_score": 0.8
				},
				{
					"title": "Edge AI for small plants",
					"effort_level": "heroic",
					"differentiation_score": 1.7
				},
				{
					"hook": "missing title, must be dropped"
				}
			]
		}`
	})

	angles, err := enricher.GenerateArticleAngles(context.Background(),
		"edge ai", []string{"edge"}, []string{"vendor comparisons"}, []string{"energy"}, 3)
	require.NoError(t, err)
	require.Len(t, angles, 2)

	assert.Equal(t, "The hidden cost of edge inference", angles[0].Title)
	assert.Equal(t, "complex", angles[0].EffortLevel)
	assert.Equal(t, []string{"intro", "measurements", "takeaways"}, angles[0].Outline)
	assert.Equal(t, 0.8, angles[0].DifferentiationScore)

	// Unknown effort level falls back to medium, score clamps to [0, 1].
	assert.Equal(t, "medium", angles[1].EffortLevel)
	assert.Equal(t, 1.0, angles[1].DifferentiationScore)

	assert.Contains(t, mock.lastPrompt(), "vendor comparisons")
}

func TestGenerateArticleAngles_NoAngles(t *testing.T) {
	enricher, _ := newTestEnricher(t, func(string) string {
		return `{"note": "no ideas"}`
	})
	angles, err := enricher.GenerateArticleAngles(context.Background(), "x", nil, nil, nil, 3)
	require.NoError(t, err)
	assert.Nil(t, angles)
}

func TestAnalyzeOutliers(t *testing.T) {
	t.Run("valid recommendation", func(t *testing.T) {
		enricher, _ := newTestEnricher(t, func(string) string {
			return `{"common_thread": "quantum networking", "disruption_potential": "high", "recommendation": "investigate"}`
		})
		result, err := enricher.AnalyzeOutliers(context.Background(), []string{"doc one", "doc two"})
		require.NoError(t, err)
		assert.Equal(t, "quantum networking", result.CommonThread)
		assert.Equal(t, "investigate", result.Recommendation)
		assert.False(t, result.Degraded)
	})

	t.Run("invalid recommendation falls back to watch", func(t *testing.T) {
		enricher, _ := newTestEnricher(t, func(string) string {
			return `{"common_thread": "none", "recommendation": "panic"}`
		})
		result, err := enricher.AnalyzeOutliers(context.Background(), []string{"doc"})
		require.NoError(t, err)
		assert.Equal(t, "watch", result.Recommendation)
	})

	t.Run("degraded keeps watch", func(t *testing.T) {
		enricher, _ := newTestEnricher(t, func(string) string {
			return "nothing structured here"
		})
		result, err := enricher.AnalyzeOutliers(context.Background(), []string{"doc"})
		require.NoError(t, err)
		assert.True(t, result.Degraded)
		assert.Equal(t, "watch", result.Recommendation)
	})
}

func TestSampleBlock(t *testing.T) {
	docs := []string{
		strings.Repeat("a", 500),
		"short",
		"c", "d", "e", "f", "g",
	}
	block := sampleBlock(docs)

	assert.Contains(t, block, "1. "+strings.Repeat("a", 400)+"\n")
	assert.Contains(t, block, "2. short\n")
	assert.Contains(t, block, "5. e\n")
	assert.NotContains(t, block, "6.", "capped at five documents")
}

func TestSampleBlock_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" is two bytes; the leading "x" shifts every rune boundary onto an
	// odd offset, so a naive 400-byte cut would land mid-rune.
	doc := "x" + strings.Repeat("é", 250)
	block := sampleBlock([]string{doc})

	assert.True(t, utf8.ValidString(block), "truncation must not split a rune")
	assert.Contains(t, block, "1. x"+strings.Repeat("é", 199)+"\n")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "ab", truncateRunes("abcd", 2))
	assert.Equal(t, "a", truncateRunes("aéz", 2), "cut backs off to the rune start")
	assert.Equal(t, "aé", truncateRunes("aéz", 3))
}
