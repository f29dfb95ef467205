package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func setupCleanup(t *testing.T) (*database.Client, *services.ExecutionService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewExecutionService(client.Client), services.NewEventService(client.Client)
}

// backdateExecution rewrites created_at directly; the field is immutable
// through Ent, which is exactly what we want in production.
func backdateExecution(t *testing.T, client *database.Client, executionID string, age time.Duration) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		"UPDATE workflow_executions SET created_at = $1 WHERE execution_id = $2",
		time.Now().Add(-age), executionID)
	require.NoError(t, err)
}

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		ExecutionRetentionDays: 90,
		EventTTL:               1 * time.Hour,
		CleanupInterval:        1 * time.Hour,
	}
}

func TestService_SoftDeletesOldTerminalExecutions(t *testing.T) {
	client, execService, eventService := setupCleanup(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "old.example.com",
		Status: workflowexecution.StatusCompleted,
	})
	require.NoError(t, err)
	backdateExecution(t, client, exec.ID, 120*24*time.Hour)

	svc := NewService(retentionConfig(), execService, eventService)
	svc.RunAll(ctx)

	_, err = execService.GetExecution(ctx, exec.ID)
	assert.ErrorIs(t, err, services.ErrNotFound, "soft-deleted execution should be invisible")
}

func TestService_PreservesRecentExecutions(t *testing.T) {
	_, execService, eventService := setupCleanup(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "recent.example.com",
		Status: workflowexecution.StatusCompleted,
	})
	require.NoError(t, err)

	svc := NewService(retentionConfig(), execService, eventService)
	svc.RunAll(ctx)

	got, err := execService.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestService_PreservesOldInflightExecutions(t *testing.T) {
	client, execService, eventService := setupCleanup(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "stuck.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)
	backdateExecution(t, client, exec.ID, 120*24*time.Hour)

	svc := NewService(retentionConfig(), execService, eventService)
	svc.RunAll(ctx)

	// In-flight rows are never retention targets; orphan recovery owns them.
	got, err := execService.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client, execService, eventService := setupCleanup(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "events.example.com",
	})
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetExecutionID(exec.ID).
		SetChannel("audits").
		SetPayload(map[string]any{"type": "audit.progress"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetExecutionID(exec.ID).
		SetChannel("audits").
		SetPayload(map[string]any{"type": "audit.progress"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), execService, eventService)
	svc.RunAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "audits", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "expired event removed, recent one kept for catchup")
}

func TestService_DisabledSweepsAreNoOps(t *testing.T) {
	client, execService, eventService := setupCleanup(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "keep.example.com",
		Status: workflowexecution.StatusFailed,
	})
	require.NoError(t, err)
	backdateExecution(t, client, exec.ID, 400*24*time.Hour)

	svc := NewService(config.RetentionConfig{CleanupInterval: time.Hour}, execService, eventService)
	svc.RunAll(ctx)

	got, err := execService.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
}

func TestService_StartStop(t *testing.T) {
	_, execService, eventService := setupCleanup(t)

	cfg := retentionConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	svc := NewService(cfg, execService, eventService)

	svc.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	svc.Stop()
}
