package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecutionChannelPayloads_ContainExecutionID is a contract test between
// the backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.execution_id` in
// the JSON payload. ANY payload that is broadcast on an execution-specific
// channel (execution:{id}) MUST include a non-empty `execution_id` field,
// otherwise the frontend silently drops it.
//
// If you add a new payload that flows through an execution channel, add it
// here; the test fails when execution_id is missing from the JSON.
func TestExecutionChannelPayloads_ContainExecutionID(t *testing.T) {
	const testExecutionID = "exec-contract-test"

	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "AuditProgressPayload",
			payload: AuditProgressPayload{
				Type:        EventTypeAuditProgress,
				ExecutionID: testExecutionID,
				Domain:      "example.com",
				Step:        "editorial_analysis",
				Status:      "running",
			},
		},
		{
			name: "ExecutionStatusPayload",
			payload: ExecutionStatusPayload{
				Type:         EventTypeExecutionStatus,
				ExecutionID:  testExecutionID,
				WorkflowType: "audit_orchestrator",
				Status:       "running",
			},
		},
		{
			name: "PipelineStagePayload",
			payload: PipelineStagePayload{
				Type:        EventTypePipelineStage,
				ExecutionID: testExecutionID,
				PipelineID:  7,
				Stage:       1,
				StageName:   "clustering",
				Status:      "running",
			},
		},
		{
			name: "ProgressTickPayload",
			payload: ProgressTickPayload{
				Type:        EventTypeProgressTick,
				ExecutionID: testExecutionID,
				Step:        "competitor_scraping",
				Done:        1,
				Total:       10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))

			executionID, ok := decoded["execution_id"].(string)
			require.True(t, ok, "%s must serialize an execution_id field", tt.name)
			assert.Equal(t, testExecutionID, executionID)
		})
	}
}

// TestTruncationEnvelope_RoutableWithoutBody verifies the truncation envelope
// still carries everything a client needs to fetch the full event.
func TestTruncationEnvelope_RoutableWithoutBody(t *testing.T) {
	payload, err := json.Marshal(map[string]any{
		"type":         EventTypeExecutionStatus,
		"execution_id": "exec-1",
		"db_event_id":  int64(7),
		"domain":       string(make([]byte, 8000)),
	})
	require.NoError(t, err)

	result, err := buildTruncatedPayload(payload)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, EventTypeExecutionStatus, envelope["type"])
	assert.Equal(t, "exec-1", envelope["execution_id"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
	assert.Equal(t, true, envelope["truncated"])
}
