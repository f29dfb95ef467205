package e2e

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/pkg/models"
)

// TestConcurrentAuditRequestsShareOneExecution hammers the audit endpoint
// while the first worker is mid-analysis: every caller must join the same
// execution instead of launching its own.
func TestConcurrentAuditRequestsShareOneExecution(t *testing.T) {
	app := NewTestApp(t)
	domain := "race.example.com"
	app.SeedPipeline(domain)
	app.Collab.SlowAnalyze(300 * time.Millisecond)

	const requesters = 10
	codes := make([]int, requesters)
	pendings := make([]models.PendingAuditResponse, requesters)

	var wg sync.WaitGroup
	for i := 0; i < requesters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = app.GetJSON("/api/v1/sites/"+domain+"/audit", &pendings[i])
		}(i)
	}
	wg.Wait()

	ids := map[string]struct{}{}
	for i := 0; i < requesters; i++ {
		require.Equal(t, http.StatusAccepted, codes[i], "request %d", i)
		require.NotEmpty(t, pendings[i].ExecutionID, "request %d", i)
		ids[pendings[i].ExecutionID] = struct{}{}
	}
	assert.Len(t, ids, 1, "all requests must share one execution")

	for id := range ids {
		app.WaitForAudit(id, "completed")
	}

	// After completion the same endpoint serves the assembled view.
	var full models.SiteAuditResponse
	code := app.GetJSON("/api/v1/sites/"+domain+"/audit", &full)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, full.DataStatus.Essential())
}
