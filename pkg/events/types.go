// Package events provides realtime event delivery via WebSocket, with
// PostgreSQL NOTIFY/LISTEN carrying events across pods.
//
// Audit and pipeline progress events are persisted to the events table and
// broadcast atomically (pg_notify fires on COMMIT), so reconnecting clients
// can catch up from the last db_event_id they saw. High-frequency progress
// ticks are transient: NOTIFY only, lost on disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Audit orchestrator lifecycle: one event per step transition plus a
	// terminal event for the whole audit.
	EventTypeAuditProgress = "audit.progress"

	// Workflow execution lifecycle (pending, running, completed, failed).
	EventTypeExecutionStatus = "execution.status"

	// Trend pipeline stage transitions.
	EventTypePipelineStage = "pipeline.stage"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Fine-grained progress ticks inside a step, ephemeral.
	EventTypeProgressTick = "progress.tick"
)

// GlobalExecutionsChannel carries execution-level status events. The
// execution list view subscribes here for realtime updates.
const GlobalExecutionsChannel = "executions"

// ExecutionChannel returns the channel name for one execution's events.
// Format: "execution:{execution_id}"
func ExecutionChannel(executionID string) string {
	return "execution:" + executionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // channel name (e.g. "execution:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
