package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/models"
)

// TestAuditFailurePropagation fails the editorial analysis collaborator and
// verifies the failure surfaces on the step, the orchestrator, and the
// retry path.
func TestAuditFailurePropagation(t *testing.T) {
	app := NewTestApp(t)
	domain := "failing.example.com"
	app.SeedPipeline(domain)
	app.Collab.FailAnalyze(http.StatusUnprocessableEntity)

	var pending models.PendingAuditResponse
	code := app.GetJSON("/api/v1/sites/"+domain+"/audit", &pending)
	require.Equal(t, http.StatusAccepted, code)

	final := app.WaitForAudit(pending.ExecutionID, "failed")
	errMsg, _ := final["error_message"].(string)
	assert.Contains(t, errMsg, models.StepEditorialAnalysis)
	assert.Equal(t, float64(100), final["overall_progress"])

	steps, _ := final["steps"].([]any)
	require.Len(t, steps, 5)
	var editorial map[string]any
	for _, raw := range steps {
		step := raw.(map[string]any)
		if step["name"] == models.StepEditorialAnalysis {
			editorial = step
		}
	}
	require.NotNil(t, editorial)
	assert.Equal(t, "failed", editorial["status"])
	assert.NotEmpty(t, editorial["error"])

	// The terminal run frees the launch gate: a healthy retry succeeds and
	// produces the full view.
	app.Collab.FailAnalyze(0)
	var retry models.PendingAuditResponse
	code = app.GetJSON("/api/v1/sites/"+domain+"/audit", &retry)
	require.Equal(t, http.StatusAccepted, code)
	assert.NotEqual(t, pending.ExecutionID, retry.ExecutionID)

	app.WaitForAudit(retry.ExecutionID, "completed")
	var full models.SiteAuditResponse
	code = app.GetJSON("/api/v1/sites/"+domain+"/audit", &full)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, full.Profile)
}
