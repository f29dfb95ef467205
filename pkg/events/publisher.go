package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY
// in the same transaction (pg_notify is transactional, held until COMMIT).
// Transient events are broadcast via NOTIFY only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates an EventPublisher. The db parameter should be
// the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishAuditProgress persists an audit.progress event to the execution
// channel and broadcasts a transient copy to the global executions channel.
// Both publishes are best-effort; the first error is returned.
func (p *EventPublisher) PublishAuditProgress(ctx context.Context, payload AuditProgressPayload) error {
	payload.Type = EventTypeAuditProgress
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AuditProgressPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.ExecutionID, ExecutionChannel(payload.ExecutionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish audit progress to execution channel",
			"execution_id", payload.ExecutionID, "step", payload.Step, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalExecutionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish audit progress to global channel",
			"execution_id", payload.ExecutionID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishExecutionStatus persists an execution.status event to the execution
// channel and broadcasts a transient copy to the global executions channel.
func (p *EventPublisher) PublishExecutionStatus(ctx context.Context, payload ExecutionStatusPayload) error {
	payload.Type = EventTypeExecutionStatus
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ExecutionStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.ExecutionID, ExecutionChannel(payload.ExecutionID), payloadJSON); err != nil {
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalExecutionsChannel, payloadJSON); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishPipelineStage persists and broadcasts a pipeline.stage event on the
// owning execution's channel.
func (p *EventPublisher) PublishPipelineStage(ctx context.Context, payload PipelineStagePayload) error {
	payload.Type = EventTypePipelineStage
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PipelineStagePayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ExecutionID, ExecutionChannel(payload.ExecutionID), payloadJSON)
}

// PublishProgressTick broadcasts a progress.tick transient event (no DB
// persistence). High frequency, lost on disconnect.
func (p *EventPublisher) PublishProgressTick(ctx context.Context, payload ProgressTickPayload) error {
	payload.Type = EventTypeProgressTick
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressTickPayload: %w", err)
	}
	return p.notifyOnly(ctx, ExecutionChannel(payload.ExecutionID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction.
func (p *EventPublisher) persistAndNotify(ctx context.Context, executionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (execution_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		executionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY payload carries db_event_id so clients can track their catchup
	// position.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal envelope
// with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, keeping only the routing fields the client needs to
// fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string `json:"type"`
		ExecutionID string `json:"execution_id"`
		DBEventID   *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":         routing.Type,
		"execution_id": routing.ExecutionID,
		"truncated":    true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
