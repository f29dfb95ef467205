package e2e

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/models"
)

// TestAuditCancellation requests cancellation while the worker is busy and
// verifies the chain stops at the next checkpoint.
func TestAuditCancellation(t *testing.T) {
	app := NewTestApp(t)
	domain := "cancel.example.com"
	app.SeedPipeline(domain)
	app.Collab.SlowAnalyze(300 * time.Millisecond)

	var pending models.PendingAuditResponse
	code := app.GetJSON("/api/v1/sites/"+domain+"/audit", &pending)
	require.Equal(t, http.StatusAccepted, code)

	var cancelResp map[string]string
	code = app.PostJSON("/api/v1/audit/"+pending.ExecutionID+"/cancel", nil, &cancelResp)
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "cancel_requested", cancelResp["status"])

	final := app.WaitForAudit(pending.ExecutionID, "failed")
	errMsg, _ := final["error_message"].(string)
	assert.Contains(t, errMsg, "cancelled")

	// The audit is terminal now; a second cancellation conflicts.
	code = app.PostJSON("/api/v1/audit/"+pending.ExecutionID+"/cancel", nil, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCancelUnknownExecution(t *testing.T) {
	app := NewTestApp(t)
	code := app.PostJSON("/api/v1/audit/no-such-execution/cancel", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
