package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/models"
	"github.com/trendscope/trendscope/pkg/services"
)

func TestGetAuditStatus_StepAggregation(t *testing.T) {
	_, execService, orch := setupOrphanTest(t)
	ctx := context.Background()
	domain := "status.example.com"

	parent, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
		Status: workflowexecution.StatusRunning,
		Input: map[string]any{
			"domain":      domain,
			"data_status": map[string]any{"has_profile": true},
		},
	})
	require.NoError(t, err)

	child := func(wfType workflowexecution.WorkflowType, status workflowexecution.Status) *ent.WorkflowExecution {
		c, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
			Type:     wfType,
			Domain:   domain,
			Status:   status,
			ParentID: parent.ID,
		})
		require.NoError(t, err)
		return c
	}

	child(workflowexecution.WorkflowTypeCompetitorSearch, workflowexecution.StatusCompleted)
	child(workflowexecution.WorkflowTypeClientScraping, workflowexecution.StatusRunning)

	// A failed competitor scraping attempt superseded by a later retry: the
	// newest child per workflow type wins.
	firstScrape := child(workflowexecution.WorkflowTypeScraping, workflowexecution.StatusRunning)
	failed := workflowexecution.StatusFailed
	errMsg := "scraper unreachable"
	_, err = execService.UpdateExecution(ctx, firstScrape.ID, services.UpdateExecutionInput{
		Status: &failed,
		Error:  &errMsg,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	child(workflowexecution.WorkflowTypeScraping, workflowexecution.StatusCompleted)

	status, err := orch.GetAuditStatus(ctx, parent.ID, "")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, status.ExecutionID)
	assert.Equal(t, domain, status.Domain)
	assert.Equal(t, "running", status.OverallStatus)
	require.Len(t, status.Steps, 5)

	editorial := stepByName(t, status.Steps, models.StepEditorialAnalysis)
	assert.Equal(t, "skipped", editorial.Status)
	assert.Equal(t, float64(100), editorial.Progress)

	search := stepByName(t, status.Steps, models.StepCompetitorSearch)
	assert.Equal(t, "completed", search.Status)
	assert.Equal(t, float64(100), search.Progress)

	clientScrape := stepByName(t, status.Steps, models.StepClientScraping)
	assert.Equal(t, "running", clientScrape.Status)
	assert.Equal(t, float64(50), clientScrape.Progress)

	competitorScrape := stepByName(t, status.Steps, models.StepCompetitorScraping)
	assert.Equal(t, "completed", competitorScrape.Status)
	assert.Empty(t, competitorScrape.Error)

	pipeline := stepByName(t, status.Steps, models.StepTrendPipeline)
	assert.Equal(t, "pending", pipeline.Status)
	assert.Zero(t, pipeline.Progress)

	assert.InDelta(t, 70.0, status.OverallProgress, 0.001)
}

func TestGetAuditStatus_TerminalForcesFullProgress(t *testing.T) {
	_, execService, orch := setupOrphanTest(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "done.example.com",
		Status: workflowexecution.StatusCompleted,
	})
	require.NoError(t, err)

	status, err := orch.GetAuditStatus(ctx, exec.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "completed", status.OverallStatus)
	assert.Equal(t, float64(100), status.OverallProgress)
}

func TestGetAuditStatus_AlreadyCompletedSentinel(t *testing.T) {
	_, execService, orch := setupOrphanTest(t)
	ctx := context.Background()
	domain := "cached.example.com"

	_, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
		Status: workflowexecution.StatusCompleted,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	newest, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
		Status: workflowexecution.StatusFailed,
	})
	require.NoError(t, err)

	status, err := orch.GetAuditStatus(ctx, AlreadyCompletedID, domain)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, status.ExecutionID)
	assert.Equal(t, float64(100), status.OverallProgress)

	_, err = orch.GetAuditStatus(ctx, AlreadyCompletedID, "")
	assert.True(t, services.IsValidationError(err))

	_, err = orch.GetAuditStatus(ctx, AlreadyCompletedID, "never-audited.example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetAuditStatus_RejectsNonAuditExecution(t *testing.T) {
	_, execService, orch := setupOrphanTest(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "scrape.example.com",
	})
	require.NoError(t, err)

	_, err = orch.GetAuditStatus(ctx, exec.ID, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = orch.GetAuditStatus(ctx, "missing-id", "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
