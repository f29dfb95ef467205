package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditProgressPayload(t *testing.T) {
	t.Run("creates audit progress payload with all fields", func(t *testing.T) {
		payload := AuditProgressPayload{
			Type:        EventTypeAuditProgress,
			ExecutionID: "exec-123",
			Domain:      "example.com",
			Step:        "competitor_search",
			Status:      "running",
			Progress:    42.5,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, EventTypeAuditProgress, payload.Type)
		assert.Equal(t, "exec-123", payload.ExecutionID)
		assert.Equal(t, "example.com", payload.Domain)
		assert.Equal(t, "competitor_search", payload.Step)
		assert.Equal(t, "running", payload.Status)
		assert.Equal(t, 42.5, payload.Progress)
		assert.NotEmpty(t, payload.Timestamp)
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		payload := AuditProgressPayload{
			Type:        EventTypeAuditProgress,
			ExecutionID: "exec-456",
			Domain:      "example.com",
			Step:        "trend_pipeline",
			Status:      "completed",
			Progress:    100,
			Timestamp:   "2026-08-10T12:00:00Z",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded AuditProgressPayload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, payload, decoded)
	})
}

func TestExecutionStatusPayload(t *testing.T) {
	t.Run("supports terminal and non-terminal statuses", func(t *testing.T) {
		statuses := []string{"pending", "running", "completed", "failed", "cancelled"}

		for _, status := range statuses {
			payload := ExecutionStatusPayload{
				Type:         EventTypeExecutionStatus,
				ExecutionID:  "exec-789",
				WorkflowType: "audit_orchestrator",
				Domain:       "example.com",
				Status:       status,
				Timestamp:    time.Now().Format(time.RFC3339Nano),
			}
			assert.Equal(t, status, payload.Status)
		}
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		payload := ExecutionStatusPayload{
			Type:         EventTypeExecutionStatus,
			ExecutionID:  "exec-abc",
			WorkflowType: "scraping",
			Domain:       "competitor.net",
			Status:       "running",
			Timestamp:    "2026-08-10T12:00:00Z",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded ExecutionStatusPayload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, payload, decoded)
	})
}

func TestPipelineStagePayload(t *testing.T) {
	t.Run("carries stage index and name", func(t *testing.T) {
		payload := PipelineStagePayload{
			Type:        EventTypePipelineStage,
			ExecutionID: "exec-def",
			PipelineID:  101,
			Stage:       2,
			StageName:   "temporal",
			Status:      "completed",
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, 2, payload.Stage)
		assert.Equal(t, "temporal", payload.StageName)
		assert.Equal(t, "completed", payload.Status)
	})

	t.Run("stages run from clustering through gap analysis", func(t *testing.T) {
		stageNames := []string{"clustering", "temporal", "llm", "gap_analysis"}

		for i, name := range stageNames {
			payload := PipelineStagePayload{
				Type:        EventTypePipelineStage,
				ExecutionID: "exec-ghi",
				PipelineID:  102,
				Stage:       i + 1,
				StageName:   name,
				Status:      "running",
				Timestamp:   time.Now().Format(time.RFC3339Nano),
			}
			assert.Equal(t, i+1, payload.Stage)
			assert.Equal(t, name, payload.StageName)
		}
	})
}

func TestProgressTickPayload(t *testing.T) {
	t.Run("computes fractional progress", func(t *testing.T) {
		payload := ProgressTickPayload{
			Type:        EventTypeProgressTick,
			ExecutionID: "exec-jkl",
			Step:        "competitor_scraping",
			Done:        7,
			Total:       20,
			Progress:    35,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		}

		assert.Equal(t, 7, payload.Done)
		assert.Equal(t, 20, payload.Total)
		assert.Equal(t, 35.0, payload.Progress)
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		payload := ProgressTickPayload{
			Type:        EventTypeProgressTick,
			ExecutionID: "exec-mno",
			Step:        "client_scraping",
			Done:        1,
			Total:       1,
			Progress:    100,
			Timestamp:   "2026-08-10T12:00:00Z",
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded ProgressTickPayload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, payload, decoded)
	})
}
