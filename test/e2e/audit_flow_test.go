package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/models"
)

// TestAuditLifecycle drives a fresh domain through the complete audit flow
// over HTTP: launch, background workflow chaining, status polling, and the
// final assembled view.
func TestAuditLifecycle(t *testing.T) {
	app := NewTestApp(t)
	domain := "client.example.com"
	app.SeedPipeline(domain)

	// First request launches the audit and reports the workflow plan.
	var pending models.PendingAuditResponse
	code := app.GetJSON("/api/v1/sites/"+domain+"/audit", &pending)
	require.Equal(t, http.StatusAccepted, code)
	require.NotEmpty(t, pending.ExecutionID)
	assert.Equal(t, "pending", pending.Status)
	assert.Equal(t, domain, pending.Domain)
	assert.True(t, pending.DataStatus.HasTrendPipeline)
	require.Len(t, pending.WorkflowSteps, 5)

	stepsByName := map[string]models.WorkflowStep{}
	for _, s := range pending.WorkflowSteps {
		stepsByName[s.Name] = s
	}
	assert.Equal(t, "skipped", stepsByName[models.StepTrendPipeline].Status)

	final := app.WaitForAudit(pending.ExecutionID, "completed")
	assert.Equal(t, float64(100), final["overall_progress"])

	// The domain-scoped status path resolves the sentinel id to the most
	// recent finished audit.
	var resolved map[string]any
	code = app.GetJSON("/api/v1/sites/"+domain+"/audit/status/already-completed", &resolved)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, pending.ExecutionID, resolved["execution_id"])
	assert.Equal(t, "completed", resolved["status"])

	// The second request is served from persisted data.
	var full models.SiteAuditResponse
	code = app.GetJSON("/api/v1/sites/"+domain+"/audit", &full)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, full.Profile)
	assert.Equal(t, "intermediate", full.Profile.LanguageLevel)
	assert.Len(t, full.Competitors, 2)
	assert.True(t, full.DataStatus.Essential())
	assert.NotZero(t, full.AnalysisID)

	// Views assembled by the run are reachable through their own endpoints.
	var profile models.SiteProfileResponse
	code = app.GetJSON("/api/v1/sites/"+domain, &profile)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain, profile.Domain)
	assert.Equal(t, 20, profile.PagesAnalyzed)

	var competitors models.CompetitorListResponse
	code = app.GetJSON("/api/v1/competitors/"+domain, &competitors)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, competitors.Total)
	for _, comp := range competitors.Competitors {
		assert.True(t, comp.Validated, comp.Domain)
	}

	// The execution detail endpoint shows the chained children and the
	// audit log trail.
	var detail map[string]any
	code = app.GetJSON("/api/v1/executions/"+pending.ExecutionID, &detail)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "audit_orchestrator", detail["workflow_type"])
	assert.Equal(t, true, detail["was_success"])
	children, _ := detail["children"].([]any)
	assert.Len(t, children, 4, "one child per missing workflow")
	logs, _ := detail["logs"].([]any)
	assert.NotEmpty(t, logs)
}

// TestAuditSectionFlags verifies the include_* query parameters prune the
// assembled view.
func TestAuditSectionFlags(t *testing.T) {
	app := NewTestApp(t)
	domain := "flags.example.com"
	app.SeedPipeline(domain)

	var pending models.PendingAuditResponse
	code := app.GetJSON("/api/v1/sites/"+domain+"/audit", &pending)
	require.Equal(t, http.StatusAccepted, code)
	app.WaitForAudit(pending.ExecutionID, "completed")

	var full map[string]any
	code = app.GetJSON("/api/v1/sites/"+domain+"/audit?include_topics=false&include_trending=false&include_opportunities=false", &full)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, full, "topics")
	assert.NotContains(t, full, "trending")
	assert.NotContains(t, full, "opportunities")
	assert.Contains(t, full, "profile")
}

func TestAuditStatus_UnknownExecution(t *testing.T) {
	app := NewTestApp(t)
	code := app.GetJSON("/api/v1/audit/status/no-such-execution", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
