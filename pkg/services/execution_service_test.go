package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func newExecutionService(t *testing.T) *services.ExecutionService {
	t.Helper()
	return services.NewExecutionService(testdb.NewTestClient(t).Client)
}

func statusPtr(s workflowexecution.Status) *workflowexecution.Status { return &s }
func strPtr(s string) *string                                        { return &s }
func boolPtr(b bool) *bool                                           { return &b }

func TestExecutionLifecycle(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "lifecycle.example.com",
		Input:  map[string]any{"max_pages": 50},
	})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusPending, exec.Status)
	assert.Nil(t, exec.StartTime)

	running, err := svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusRunning),
	})
	require.NoError(t, err)
	require.NotNil(t, running.StartTime)
	startTime := *running.StartTime

	// A second running update must not re-stamp start_time.
	running, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusRunning),
	})
	require.NoError(t, err)
	assert.WithinDuration(t, startTime, *running.StartTime, time.Millisecond)

	done, err := svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status:     statusPtr(workflowexecution.StatusCompleted),
		Output:     map[string]any{"articles": 120},
		WasSuccess: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, done.Status)
	require.NotNil(t, done.EndTime)
	require.NotNil(t, done.DurationSeconds)
	assert.GreaterOrEqual(t, *done.DurationSeconds, 0.0)
}

func TestUpdateExecution_TerminalProtection(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "terminal.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)

	_, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusFailed),
		Error:  strPtr("scraper crashed"),
	})
	require.NoError(t, err)

	// Repeating the same terminal status is idempotent and still allows
	// enrichment.
	enriched, err := svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusFailed),
		Output: map[string]any{"partial_pages": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, enriched.Status)
	assert.Equal(t, float64(3), enriched.OutputData["partial_pages"])

	// A conflicting terminal transition is rejected.
	_, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusCompleted),
	})
	assert.ErrorIs(t, err, services.ErrTerminalState)

	// Reverting to a non-terminal status is rejected too.
	_, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusRunning),
	})
	assert.ErrorIs(t, err, services.ErrTerminalState)
}

func TestUpdateExecution_SanitizesOutput(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "nan.example.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Output: map[string]any{
			"velocity":  math.Inf(1),
			"coherence": math.NaN(),
			"volume":    42,
		},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.OutputData["velocity"])
	assert.Nil(t, updated.OutputData["coherence"])
	assert.Equal(t, float64(42), updated.OutputData["volume"])
}

func TestCreateExecution_OrchestratorDedup(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	first, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "dedup.example.com",
	})
	require.NoError(t, err)

	// The partial unique index blocks a second in-flight orchestrator.
	_, err = svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "dedup.example.com",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// Other domains and other workflow types are unaffected.
	_, err = svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "other.example.com",
	})
	assert.NoError(t, err)
	_, err = svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:     workflowexecution.WorkflowTypeScraping,
		Domain:   "dedup.example.com",
		ParentID: first.ID,
	})
	assert.NoError(t, err)

	// Completing the orchestrator frees the slot.
	_, err = svc.UpdateExecution(ctx, first.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusCompleted),
	})
	require.NoError(t, err)
	_, err = svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "dedup.example.com",
	})
	assert.NoError(t, err)
}

func TestFindInflightOrchestratorAndChildren(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	_, err := svc.FindInflightOrchestrator(ctx, "missing.example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)

	orch, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "parent.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)

	found, err := svc.FindInflightOrchestrator(ctx, "parent.example.com")
	require.NoError(t, err)
	assert.Equal(t, orch.ID, found.ID)

	childTypes := []workflowexecution.WorkflowType{
		workflowexecution.WorkflowTypeScraping,
		workflowexecution.WorkflowTypeTrendPipeline,
	}
	for _, wt := range childTypes {
		_, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
			Type:     wt,
			Domain:   "parent.example.com",
			ParentID: orch.ID,
		})
		require.NoError(t, err)
	}

	children, err := svc.ListChildren(ctx, orch.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, childTypes[0], children[0].WorkflowType, "oldest first")
}

func TestFindLatest(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	for _, status := range []workflowexecution.Status{
		workflowexecution.StatusFailed,
		workflowexecution.StatusCompleted,
	} {
		exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
			Type:   workflowexecution.WorkflowTypeScraping,
			Domain: "latest.example.com",
			Status: workflowexecution.StatusRunning,
		})
		require.NoError(t, err)
		_, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
			Status:     statusPtr(status),
			WasSuccess: boolPtr(status == workflowexecution.StatusCompleted),
		})
		require.NoError(t, err)
	}

	latest, err := svc.FindLatest(ctx, workflowexecution.WorkflowTypeScraping, services.FindLatestFilter{
		Domain: "latest.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, latest.Status)

	successful, err := svc.FindLatest(ctx, workflowexecution.WorkflowTypeScraping, services.FindLatestFilter{
		Domain:     "latest.example.com",
		WasSuccess: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, latest.ID, successful.ID)

	_, err = svc.FindLatest(ctx, workflowexecution.WorkflowTypeScraping, services.FindLatestFilter{
		Domain:   "latest.example.com",
		Statuses: []workflowexecution.Status{workflowexecution.StatusRunning},
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCancellationFlag(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "cancel.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)

	assert.False(t, svc.IsCancelRequested(ctx, exec.ID))
	require.NoError(t, svc.RequestCancellation(ctx, exec.ID))
	assert.True(t, svc.IsCancelRequested(ctx, exec.ID))

	// The flag read never errors, even for unknown executions.
	assert.False(t, svc.IsCancelRequested(ctx, "no-such-execution"))

	_, err = svc.UpdateExecution(ctx, exec.ID, services.UpdateExecutionInput{
		Status: statusPtr(workflowexecution.StatusCompleted),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.RequestCancellation(ctx, exec.ID), services.ErrTerminalState)
}

func TestSoftDelete(t *testing.T) {
	svc := newExecutionService(t)
	ctx := context.Background()

	exec, err := svc.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "tombstone.example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, exec.ID))
	_, err = svc.GetExecution(ctx, exec.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.SoftDelete(ctx, "no-such-execution"), services.ErrNotFound)
}
