package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/collab"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func TestValidateDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"news.site.co.uk",
		"a-b.example.io",
		"123.example.com",
	}
	for _, domain := range valid {
		assert.NoError(t, ValidateDomain(domain), domain)
	}

	invalid := []string{
		"",
		"localhost",
		"Example.com",
		"http://example.com",
		"example",
		"-bad.example.com",
		"exa mple.com",
		"example..com",
	}
	for _, domain := range invalid {
		err := ValidateDomain(domain)
		assert.True(t, services.IsValidationError(err), "expected validation error for %q", domain)
	}
}

// collabStub serves all three collaborator endpoints from one server.
type collabStub struct {
	analyzeDelay  time.Duration
	analyzeStatus int // non-zero: /analyze fails with this code
	scrapeStatus  int // non-zero: /scrape fails with this code
}

func newCollabServer(t *testing.T, stub collabStub) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		switch r.URL.Path {
		case "/analyze":
			if stub.analyzeDelay > 0 {
				time.Sleep(stub.analyzeDelay)
			}
			if stub.analyzeStatus != 0 {
				http.Error(w, "analysis rejected", stub.analyzeStatus)
				return
			}
			domain, _ := body["domain"].(string)
			_ = json.NewEncoder(w).Encode(collab.EditorialAnalysis{
				Domain:        domain,
				LanguageLevel: "advanced",
				EditorialTone: "analytical",
				PagesAnalyzed: 25,
			})
		case "/search":
			_ = json.NewEncoder(w).Encode(collab.SearchResult{
				Competitors: []collab.FoundCompetitor{
					{Domain: "rival-one.example.com", Source: "serp", RelevanceScore: 0.9},
					{Domain: "rival-two.example.com", Source: "serp", RelevanceScore: 0.7},
				},
			})
		case "/scrape":
			if stub.scrapeStatus != 0 {
				http.Error(w, "scrape rejected", stub.scrapeStatus)
				return
			}
			domains, _ := body["domains"].([]any)
			var articles []collab.ScrapedArticle
			for _, d := range domains {
				domain := d.(string)
				for i := 0; i < 2; i++ {
					articles = append(articles, collab.ScrapedArticle{
						Domain:        domain,
						URL:           fmt.Sprintf("https://%s/article-%d", domain, i),
						Title:         fmt.Sprintf("Article %d", i),
						ContentText:   "body",
						PublishedDate: time.Now().UTC().Format(time.RFC3339),
					})
				}
			}
			_ = json.NewEncoder(w).Encode(collab.ScrapeResult{Articles: articles, Scraped: len(articles)})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

type auditFixture struct {
	client      *database.Client
	executions  *services.ExecutionService
	trends      *services.TrendService
	profiles    *services.ProfileService
	competitors *services.CompetitorService
	articles    *services.ArticleService
	orch        *Orchestrator
}

func newAuditFixture(t *testing.T, stub collabStub) *auditFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()
	server := newCollabServer(t, stub)

	collabCfg := collab.ClientConfig{
		BaseURL:     server.URL,
		Timeout:     10 * time.Second,
		MaxRetries:  1,
		MinInterval: time.Millisecond,
	}

	f := &auditFixture{
		client:      client,
		executions:  services.NewExecutionService(client.Client),
		trends:      services.NewTrendService(client.Client),
		profiles:    services.NewProfileService(client.Client),
		competitors: services.NewCompetitorService(client.Client, logger),
		articles:    services.NewArticleService(client.Client),
	}
	f.orch = NewOrchestrator(config.AuditConfig{
		MinClientArticles:     1,
		MinCompetitorArticles: 1,
		MaxCompetitors:        2,
	}, Deps{
		Executions:  f.executions,
		AuditLog:    services.NewAuditLogService(client.Client, logger),
		Profiles:    f.profiles,
		Competitors: f.competitors,
		Articles:    f.articles,
		Trends:      f.trends,
		Analysis:    collab.NewAnalysisClient(collabCfg, logger),
		Search:      collab.NewCompetitorSearchClient(collabCfg, logger),
		Scraper:     collab.NewScraperClient(collabCfg, logger),
	}, logger)
	return f
}

// seedCompletedPipeline records a trend pipeline run with stages 1-3 done, so
// audits for the domain do not need the embedding stack.
func seedCompletedPipeline(t *testing.T, f *auditFixture, domain string) {
	t.Helper()
	ctx := context.Background()
	pipeline, err := f.trends.CreatePipeline(ctx, "seed-"+domain, domain, []string{domain}, 90, 10)
	require.NoError(t, err)
	require.NoError(t, f.trends.SetStageStatus(ctx, pipeline.ID, services.StageClustering, "completed"))
	require.NoError(t, f.trends.SetStageStatus(ctx, pipeline.ID, services.StageTemporal, "completed"))
	require.NoError(t, f.trends.SetStageStatus(ctx, pipeline.ID, services.StageLLM, "completed"))
}

func stepByName(t *testing.T, steps []models.WorkflowStep, name string) models.WorkflowStep {
	t.Helper()
	for _, s := range steps {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("step %q not found", name)
	return models.WorkflowStep{}
}

func waitForStatus(t *testing.T, f *auditFixture, executionID string, want workflowexecution.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		got, err := f.executions.GetExecution(context.Background(), executionID)
		return err == nil && got.Status == want
	}, 10*time.Second, 20*time.Millisecond)
}

func TestRequestAudit_InvalidDomain(t *testing.T) {
	f := newAuditFixture(t, collabStub{})
	_, err := f.orch.RequestAudit(context.Background(), "not a domain", models.DefaultAuditViewFlags())
	assert.True(t, services.IsValidationError(err))
}

func TestRequestAudit_RunsMissingWorkflows(t *testing.T) {
	f := newAuditFixture(t, collabStub{})
	ctx := context.Background()
	domain := "client.example.com"
	seedCompletedPipeline(t, f, domain)

	result, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, result.Pending)
	assert.True(t, result.Pending.DataStatus.HasTrendPipeline)

	pipelineStep := stepByName(t, result.Pending.WorkflowSteps, models.StepTrendPipeline)
	assert.Equal(t, "skipped", pipelineStep.Status)
	assert.Equal(t, float64(100), pipelineStep.Progress)

	waitForStatus(t, f, result.Pending.ExecutionID, workflowexecution.StatusCompleted)

	exec, err := f.executions.GetExecution(ctx, result.Pending.ExecutionID)
	require.NoError(t, err)
	require.NotNil(t, exec.WasSuccess)
	assert.True(t, *exec.WasSuccess)

	// One child per missing workflow; the trend pipeline was satisfied.
	children, err := f.executions.ListChildren(ctx, exec.ID)
	require.NoError(t, err)
	types := make(map[workflowexecution.WorkflowType]workflowexecution.Status, len(children))
	for _, c := range children {
		types[c.WorkflowType] = c.Status
	}
	assert.Equal(t, map[workflowexecution.WorkflowType]workflowexecution.Status{
		workflowexecution.WorkflowTypeEditorialAnalysis: workflowexecution.StatusCompleted,
		workflowexecution.WorkflowTypeCompetitorSearch:  workflowexecution.StatusCompleted,
		workflowexecution.WorkflowTypeClientScraping:    workflowexecution.StatusCompleted,
		workflowexecution.WorkflowTypeScraping:          workflowexecution.StatusCompleted,
	}, types)

	profile, err := f.profiles.GetLatestProfile(ctx, domain)
	require.NoError(t, err)
	assert.Equal(t, 25, profile.PagesAnalyzed)

	validated, err := f.competitors.ValidatedDomains(ctx, domain)
	require.NoError(t, err)
	assert.Len(t, validated, 2)

	clientCount, err := f.articles.CountClientArticles(ctx, domain)
	require.NoError(t, err)
	assert.Equal(t, 2, clientCount)

	// With essentials persisted, the next request is served directly.
	again, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, again.Full)
	assert.Nil(t, again.Pending)
	require.NotNil(t, again.Full.Profile)
	assert.Equal(t, "advanced", again.Full.Profile.LanguageLevel)
	assert.Len(t, again.Full.Competitors, 2)
	assert.True(t, again.Full.DataStatus.Essential())
}

func TestRequestAudit_ConcurrentRequestsShareOneExecution(t *testing.T) {
	f := newAuditFixture(t, collabStub{analyzeDelay: 300 * time.Millisecond})
	ctx := context.Background()
	domain := "race.example.com"
	seedCompletedPipeline(t, f, domain)

	const requesters = 10
	results := make([]*AuditResult, requesters)
	errs := make([]error, requesters)

	var wg sync.WaitGroup
	for i := 0; i < requesters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
		}(i)
	}
	wg.Wait()

	ids := make(map[string]struct{})
	for i := 0; i < requesters; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i].Pending, "request %d should join the in-flight audit", i)
		ids[results[i].Pending.ExecutionID] = struct{}{}
	}
	assert.Len(t, ids, 1, "all requesters must share one execution")

	count, err := f.client.WorkflowExecution.Query().
		Where(
			workflowexecution.WorkflowTypeEQ(workflowexecution.WorkflowTypeAuditOrchestrator),
			workflowexecution.DomainEQ(domain),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	for id := range ids {
		waitForStatus(t, f, id, workflowexecution.StatusCompleted)
	}
}

func TestRequestAudit_CooperativeCancellation(t *testing.T) {
	f := newAuditFixture(t, collabStub{analyzeDelay: 300 * time.Millisecond})
	ctx := context.Background()
	domain := "cancel.example.com"
	seedCompletedPipeline(t, f, domain)

	result, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, result.Pending)

	require.NoError(t, f.orch.Cancel(ctx, result.Pending.ExecutionID))

	waitForStatus(t, f, result.Pending.ExecutionID, workflowexecution.StatusFailed)
	exec, err := f.executions.GetExecution(ctx, result.Pending.ExecutionID)
	require.NoError(t, err)
	require.NotNil(t, exec.ErrorMessage)
	assert.Contains(t, *exec.ErrorMessage, "cancelled")
	require.NotNil(t, exec.WasSuccess)
	assert.False(t, *exec.WasSuccess)

	// The in-flight editorial analysis finished; the flag stopped the chain
	// before competitor search started.
	children, err := f.executions.ListChildren(ctx, exec.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, workflowexecution.WorkflowTypeEditorialAnalysis, children[0].WorkflowType)
	assert.Equal(t, workflowexecution.StatusCompleted, children[0].Status)
}

func TestRequestAudit_ParallelScrapingFailuresBothRecorded(t *testing.T) {
	f := newAuditFixture(t, collabStub{scrapeStatus: http.StatusUnprocessableEntity})
	ctx := context.Background()
	domain := "scrapefail.example.com"
	seedCompletedPipeline(t, f, domain)

	result, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, result.Pending)

	waitForStatus(t, f, result.Pending.ExecutionID, workflowexecution.StatusFailed)
	exec, err := f.executions.GetExecution(ctx, result.Pending.ExecutionID)
	require.NoError(t, err)
	require.NotNil(t, exec.ErrorMessage)

	// Client and competitor scraping fail in parallel goroutines; neither
	// failure may be lost when both append to the audit's failure list.
	assert.Contains(t, *exec.ErrorMessage, models.StepClientScraping)
	assert.Contains(t, *exec.ErrorMessage, models.StepCompetitorScraping)

	children, err := f.executions.ListChildren(ctx, exec.ID)
	require.NoError(t, err)
	statuses := make(map[workflowexecution.WorkflowType]workflowexecution.Status, len(children))
	for _, c := range children {
		statuses[c.WorkflowType] = c.Status
	}
	assert.Equal(t, workflowexecution.StatusFailed, statuses[workflowexecution.WorkflowTypeClientScraping])
	assert.Equal(t, workflowexecution.StatusFailed, statuses[workflowexecution.WorkflowTypeScraping])
}

func TestRequestAudit_StepFailureFailsAudit(t *testing.T) {
	f := newAuditFixture(t, collabStub{analyzeStatus: http.StatusUnprocessableEntity})
	ctx := context.Background()
	domain := "failing.example.com"
	seedCompletedPipeline(t, f, domain)

	result, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, result.Pending)

	waitForStatus(t, f, result.Pending.ExecutionID, workflowexecution.StatusFailed)
	exec, err := f.executions.GetExecution(ctx, result.Pending.ExecutionID)
	require.NoError(t, err)
	require.NotNil(t, exec.ErrorMessage)
	assert.Contains(t, *exec.ErrorMessage, models.StepEditorialAnalysis)

	children, err := f.executions.ListChildren(ctx, exec.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, workflowexecution.StatusFailed, children[0].Status)
	require.NotNil(t, children[0].ErrorMessage)

	// The terminal row frees the launch gate for a retry.
	retry, err := f.orch.RequestAudit(ctx, domain, models.DefaultAuditViewFlags())
	require.NoError(t, err)
	require.NotNil(t, retry.Pending)
	assert.NotEqual(t, result.Pending.ExecutionID, retry.Pending.ExecutionID)
	waitForStatus(t, f, retry.Pending.ExecutionID, workflowexecution.StatusFailed)
}
