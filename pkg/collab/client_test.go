package collab

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		MaxRetries:  3,
		MinInterval: time.Millisecond,
		MaxInterval: 5 * time.Millisecond,
	}
}

func TestPostJSON_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := newHTTPClient(fastConfig(server.URL), slog.Default(), "test")

	var out map[string]string
	err := client.postJSON(context.Background(), "/op", map[string]string{"k": "v"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, int32(3), attempts.Load(), "two 502s then success")
}

func TestPostJSON_ClientErrorIsPermanent(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "unknown domain", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newHTTPClient(fastConfig(server.URL), slog.Default(), "test")

	err := client.postJSON(context.Background(), "/op", map[string]string{}, nil)
	require.Error(t, err)

	var perm *PermanentError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, http.StatusUnprocessableEntity, perm.StatusCode)
	assert.Contains(t, perm.Body, "unknown domain")
	assert.Equal(t, int32(1), attempts.Load(), "4xx must not retry")
}

func TestPostJSON_ExhaustsRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newHTTPClient(fastConfig(server.URL), slog.Default(), "test")

	err := client.postJSON(context.Background(), "/op", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestPostJSON_UndecodableResponse(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newHTTPClient(fastConfig(server.URL), slog.Default(), "test")

	var out map[string]string
	err := client.postJSON(context.Background(), "/op", map[string]string{}, &out)
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "decode failures are permanent")
}

func TestTypedClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.URL.Path {
		case "/analyze":
			assert.Equal(t, "client.example.com", body["domain"])
			_ = json.NewEncoder(w).Encode(EditorialAnalysis{
				Domain:        "client.example.com",
				LanguageLevel: "advanced",
				EditorialTone: "analytical",
				PagesAnalyzed: 30,
			})
		case "/search":
			assert.Equal(t, float64(5), body["max_competitors"])
			_ = json.NewEncoder(w).Encode(SearchResult{
				ClientDomain: "client.example.com",
				Competitors: []FoundCompetitor{
					{Domain: "rival.com", Source: "serp", RelevanceScore: 0.8},
				},
			})
		case "/scrape":
			assert.Equal(t, []any{"rival.com"}, body["domains"])
			_ = json.NewEncoder(w).Encode(ScrapeResult{
				Articles: []ScrapedArticle{
					{Domain: "rival.com", URL: "https://rival.com/1", Title: "One"},
				},
				Scraped: 1,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	logger := slog.Default()

	analysis, err := NewAnalysisClient(fastConfig(server.URL), logger).
		Analyze(ctx, "client.example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, "advanced", analysis.LanguageLevel)
	assert.Equal(t, 30, analysis.PagesAnalyzed)

	search, err := NewCompetitorSearchClient(fastConfig(server.URL), logger).
		Search(ctx, "client.example.com", 5)
	require.NoError(t, err)
	require.Len(t, search.Competitors, 1)
	assert.Equal(t, "rival.com", search.Competitors[0].Domain)

	scrape, err := NewScraperClient(fastConfig(server.URL), logger).
		Scrape(ctx, []string{"rival.com"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, scrape.Scraped)
	require.Len(t, scrape.Articles, 1)
	assert.Equal(t, "One", scrape.Articles[0].Title)
}
