package events

import (
	"context"
	"log/slog"
)

// ProgressBridge adapts EventPublisher to the fire-and-forget progress
// interface the audit orchestrator expects. Publish failures are logged,
// never propagated: progress delivery must not fail a running audit.
type ProgressBridge struct {
	publisher *EventPublisher
	logger    *slog.Logger
}

// NewProgressBridge creates a ProgressBridge.
func NewProgressBridge(publisher *EventPublisher, logger *slog.Logger) *ProgressBridge {
	return &ProgressBridge{publisher: publisher, logger: logger.With("component", "progress_bridge")}
}

// PublishAuditProgress publishes one audit step transition.
func (b *ProgressBridge) PublishAuditProgress(ctx context.Context, executionID, domain, step, status string, progress float64) {
	err := b.publisher.PublishAuditProgress(ctx, AuditProgressPayload{
		ExecutionID: executionID,
		Domain:      domain,
		Step:        step,
		Status:      status,
		Progress:    progress,
	})
	if err != nil {
		b.logger.Warn("audit progress publish failed",
			"execution_id", executionID, "step", step, "error", err)
	}
}

// NotifyStage publishes one trend pipeline stage transition.
func (b *ProgressBridge) NotifyStage(ctx context.Context, executionID string, pipelineID, stage int, stageName, status string) {
	err := b.publisher.PublishPipelineStage(ctx, PipelineStagePayload{
		ExecutionID: executionID,
		PipelineID:  pipelineID,
		Stage:       stage,
		StageName:   stageName,
		Status:      status,
	})
	if err != nil {
		b.logger.Warn("pipeline stage publish failed",
			"execution_id", executionID, "stage", stage, "error", err)
	}
}
