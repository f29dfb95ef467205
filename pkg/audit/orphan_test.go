package audit

import (
	"context"
	"log/slog"
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

func setupOrphanTest(t *testing.T) (*database.Client, *services.ExecutionService, *Orchestrator) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.Default()
	execService := services.NewExecutionService(client.Client)

	orch := NewOrchestrator(config.AuditConfig{
		OrphanThreshold:    30 * time.Minute,
		OrphanScanInterval: time.Minute,
	}, Deps{
		Executions: execService,
		AuditLog:   services.NewAuditLogService(client.Client, logger),
	}, logger)

	return client, execService, orch
}

// ageExecution rewrites updated_at directly to simulate a crashed process
// that stopped touching its row.
func ageExecution(t *testing.T, client *database.Client, executionID string, age time.Duration) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		"UPDATE workflow_executions SET updated_at = $1 WHERE execution_id = $2",
		time.Now().Add(-age), executionID)
	require.NoError(t, err)
}

func TestRecoverOrphans_FailsStaleInflight(t *testing.T) {
	client, execService, orch := setupOrphanTest(t)
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: "crashed.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)
	ageExecution(t, client, exec.ID, time.Hour)

	recovered, err := orch.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	got, err := execService.GetExecution(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "Orphaned")
	require.NotNil(t, got.WasSuccess)
	assert.False(t, *got.WasSuccess)
	assert.NotNil(t, got.EndTime)
}

func TestRecoverOrphans_IgnoresLiveAndTerminal(t *testing.T) {
	client, execService, orch := setupOrphanTest(t)
	ctx := context.Background()

	live, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "live.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)

	terminal, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeScraping,
		Domain: "done.example.com",
		Status: workflowexecution.StatusCompleted,
	})
	require.NoError(t, err)
	ageExecution(t, client, terminal.ID, time.Hour)

	recovered, err := orch.RecoverOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, recovered)

	gotLive, err := execService.GetExecution(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusRunning, gotLive.Status)

	gotTerminal, err := execService.GetExecution(ctx, terminal.ID)
	require.NoError(t, err)
	assert.Equal(t, workflowexecution.StatusCompleted, gotTerminal.Status)
}

func TestRecoverOrphans_FreesLaunchGate(t *testing.T) {
	client, execService, orch := setupOrphanTest(t)
	ctx := context.Background()

	domain := "gate.example.com"
	stuck, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
		Status: workflowexecution.StatusPending,
	})
	require.NoError(t, err)

	// While the orphan holds the partial unique index slot, a second
	// orchestrator for the domain cannot be created.
	_, err = execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	ageExecution(t, client, stuck.ID, time.Hour)
	recovered, err := orch.RecoverOrphans(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, recovered)

	// Recovery moved the row to failed, so the slot is free again.
	fresh, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeAuditOrchestrator,
		Domain: domain,
	})
	require.NoError(t, err)
	assert.NotEqual(t, stuck.ID, fresh.ID)
}

func TestStartOrphanScan_RecoversInBackground(t *testing.T) {
	client, execService, orch := setupOrphanTest(t)
	orch.cfg.OrphanScanInterval = 20 * time.Millisecond
	ctx := context.Background()

	exec, err := execService.CreateExecution(ctx, services.CreateExecutionInput{
		Type:   workflowexecution.WorkflowTypeTrendPipeline,
		Domain: "bg.example.com",
		Status: workflowexecution.StatusRunning,
	})
	require.NoError(t, err)
	ageExecution(t, client, exec.ID, time.Hour)

	orch.StartOrphanScan(ctx)
	defer orch.StopOrphanScan()

	require.Eventually(t, func() bool {
		got, err := execService.GetExecution(ctx, exec.ID)
		return err == nil && got.Status == workflowexecution.StatusFailed
	}, 5*time.Second, 25*time.Millisecond)
}
