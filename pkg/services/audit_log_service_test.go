package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
)

func TestAuditLogAppendAndGet(t *testing.T) {
	svc := services.NewAuditLogService(testdb.NewTestClient(t).Client, slog.Default())
	ctx := context.Background()

	svc.Append(ctx, services.AppendInput{
		ExecutionID: "exec-1",
		Action:      "workflow_started",
		AgentName:   "orchestrator",
		Message:     "audit launched",
		Details:     map[string]any{"domain": "client.example.com"},
	})
	svc.Append(ctx, services.AppendInput{
		ExecutionID: "exec-1",
		Action:      "step_failed",
		StepName:    "scraping",
		Status:      auditlog.StatusError,
		Message:     "timeout",
		Traceback:   "worker.go:42",
	})
	svc.Append(ctx, services.AppendInput{
		ExecutionID: "other-exec",
		Action:      "workflow_started",
	})

	logs, err := svc.GetLogs(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Timestamp order, defaulted info status on the first entry.
	assert.Equal(t, "workflow_started", logs[0].Action)
	assert.Equal(t, auditlog.StatusInfo, logs[0].Status)
	assert.Equal(t, "client.example.com", logs[0].Details["domain"])

	assert.Equal(t, auditlog.StatusError, logs[1].Status)
	assert.Equal(t, "scraping", logs[1].StepName)
	require.NotNil(t, logs[1].ErrorTraceback)
	assert.Equal(t, "worker.go:42", *logs[1].ErrorTraceback)
}
