// Package e2e exercises the full audit stack over HTTP: real PostgreSQL,
// the audit orchestrator with its background workers, and stub collaborator
// services. The LLM and vector store are not part of these scenarios; trend
// pipeline data is seeded through the service layer instead.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trendscope/trendscope/pkg/api"
	"github.com/trendscope/trendscope/pkg/audit"
	"github.com/trendscope/trendscope/pkg/collab"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

// CollabMock stands in for the three collaborator services. Behavior is
// mutable so scenarios can slow down or fail individual endpoints.
type CollabMock struct {
	Server *httptest.Server

	mu            sync.Mutex
	analyzeDelay  time.Duration
	analyzeStatus int
}

// SlowAnalyze makes /analyze take at least d, keeping audits in flight long
// enough for concurrency and cancellation scenarios.
func (m *CollabMock) SlowAnalyze(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzeDelay = d
}

// FailAnalyze makes /analyze reply with the given HTTP status.
func (m *CollabMock) FailAnalyze(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyzeStatus = status
}

func (m *CollabMock) analyzeBehavior() (time.Duration, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analyzeDelay, m.analyzeStatus
}

func newCollabMock(t *testing.T) *CollabMock {
	t.Helper()
	m := &CollabMock{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		switch r.URL.Path {
		case "/analyze":
			delay, status := m.analyzeBehavior()
			if delay > 0 {
				time.Sleep(delay)
			}
			if status != 0 {
				http.Error(w, "analysis failed", status)
				return
			}
			domain, _ := body["domain"].(string)
			_ = json.NewEncoder(w).Encode(collab.EditorialAnalysis{
				Domain:        domain,
				LanguageLevel: "intermediate",
				EditorialTone: "informative",
				PagesAnalyzed: 20,
			})
		case "/search":
			_ = json.NewEncoder(w).Encode(collab.SearchResult{
				Competitors: []collab.FoundCompetitor{
					{Domain: "rival-one.example.com", Source: "serp", RelevanceScore: 0.9},
					{Domain: "rival-two.example.com", Source: "llm", RelevanceScore: 0.7},
				},
			})
		case "/scrape":
			domains, _ := body["domains"].([]any)
			var articles []collab.ScrapedArticle
			for _, d := range domains {
				domain := d.(string)
				for i := 0; i < 2; i++ {
					articles = append(articles, collab.ScrapedArticle{
						Domain:        domain,
						URL:           fmt.Sprintf("https://%s/post-%d", domain, i),
						Title:         fmt.Sprintf("Post %d", i),
						ContentText:   "article body",
						PublishedDate: time.Now().UTC().Format(time.RFC3339),
					})
				}
			}
			_ = json.NewEncoder(w).Encode(collab.ScrapeResult{Articles: articles, Scraped: len(articles)})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(m.Server.Close)
	return m
}

// TestApp is one fully wired application instance on a fresh schema.
type TestApp struct {
	t *testing.T

	DB           *database.Client
	Executions   *services.ExecutionService
	Trends       *services.TrendService
	Profiles     *services.ProfileService
	Competitors  *services.CompetitorService
	Articles     *services.ArticleService
	Orchestrator *audit.Orchestrator
	Collab       *CollabMock

	API *httptest.Server
}

// NewTestApp wires the audit stack against a dedicated schema and collab
// mock, and serves the HTTP API from an httptest server.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()
	mock := newCollabMock(t)

	collabCfg := collab.ClientConfig{
		BaseURL:     mock.Server.URL,
		Timeout:     10 * time.Second,
		MaxRetries:  1,
		MinInterval: time.Millisecond,
	}

	app := &TestApp{
		t:           t,
		DB:          client,
		Executions:  services.NewExecutionService(client.Client),
		Trends:      services.NewTrendService(client.Client),
		Profiles:    services.NewProfileService(client.Client),
		Competitors: services.NewCompetitorService(client.Client, logger),
		Articles:    services.NewArticleService(client.Client),
		Collab:      mock,
	}
	auditLogs := services.NewAuditLogService(client.Client, logger)
	metrics := services.NewMetricService(client.Client)

	app.Orchestrator = audit.NewOrchestrator(config.AuditConfig{
		MinClientArticles:     1,
		MinCompetitorArticles: 1,
		MaxCompetitors:        3,
	}, audit.Deps{
		Executions:  app.Executions,
		AuditLog:    auditLogs,
		Profiles:    app.Profiles,
		Competitors: app.Competitors,
		Articles:    app.Articles,
		Trends:      app.Trends,
		Analysis:    collab.NewAnalysisClient(collabCfg, logger),
		Search:      collab.NewCompetitorSearchClient(collabCfg, logger),
		Scraper:     collab.NewScraperClient(collabCfg, logger),
	}, logger)

	server := api.NewServer(&config.Config{}, api.Deps{
		DBClient:     client,
		Orchestrator: app.Orchestrator,
		Executions:   app.Executions,
		AuditLogs:    auditLogs,
		Metrics:      metrics,
		Profiles:     app.Profiles,
		Competitors:  app.Competitors,
		Articles:     app.Articles,
		Trends:       app.Trends,
	}, logger)

	app.API = httptest.NewServer(server.Handler())
	t.Cleanup(app.API.Close)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		app.Orchestrator.Drain(ctx)
	})
	return app
}

// SeedPipeline records a trend pipeline run with stages 1-3 completed so the
// audit worker treats trend data as present.
func (a *TestApp) SeedPipeline(domain string) {
	a.t.Helper()
	ctx := context.Background()
	pipeline, err := a.Trends.CreatePipeline(ctx, "seed-"+domain, domain, []string{domain}, 90, 12)
	require.NoError(a.t, err)
	require.NoError(a.t, a.Trends.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "completed"))
	require.NoError(a.t, a.Trends.SetStageStatus(ctx, pipeline.ID, services.StageTemporal, "completed"))
	require.NoError(a.t, a.Trends.SetStageStatus(ctx, pipeline.ID, services.StageLLM, "completed"))
}

// GetJSON performs a GET and decodes the JSON body into out (if non-nil).
func (a *TestApp) GetJSON(path string, out any) int {
	a.t.Helper()
	resp, err := http.Get(a.API.URL + path)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	return a.decode(resp, out)
}

// PostJSON performs a POST with a JSON body and decodes the response.
func (a *TestApp) PostJSON(path string, body, out any) int {
	a.t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(a.t, err)
	resp, err := http.Post(a.API.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(a.t, err)
	defer resp.Body.Close()
	return a.decode(resp, out)
}

func (a *TestApp) decode(resp *http.Response, out any) int {
	a.t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(a.t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// WaitForAudit polls the status endpoint until the orchestrator reaches the
// wanted overall status, returning the final status body.
func (a *TestApp) WaitForAudit(executionID, want string) map[string]any {
	a.t.Helper()
	var status map[string]any
	require.Eventually(a.t, func() bool {
		var body map[string]any
		code := a.GetJSON("/api/v1/audit/status/"+executionID, &body)
		if code != http.StatusOK {
			return false
		}
		status = body
		return body["overall_status"] == want
	}, 15*time.Second, 25*time.Millisecond, "audit %s never reached %s", executionID, want)
	return status
}
