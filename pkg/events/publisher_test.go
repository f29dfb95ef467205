package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AuditProgressPayload{
			Type:        EventTypeAuditProgress,
			ExecutionID: "exec-123",
			Domain:      "example.com",
			Step:        "editorial_analysis",
			Status:      "running",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeAuditProgress)
		assert.Contains(t, result, "exec-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionStatusPayload{
			Type:        EventTypeExecutionStatus,
			ExecutionID: "exec-123",
			Domain:      strings.Repeat("a", 8000),
			Status:      "running",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionStatusPayload{
			Type:        EventTypeExecutionStatus,
			ExecutionID: "exec-789",
			Domain:      strings.Repeat("x", 8000),
			Status:      "running",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeExecutionStatus)
		assert.Contains(t, result, "exec-789")
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed overhead first, then pad the domain so the JSON
		// lands just under the 7900-byte cutoff. The 20-byte margin absorbs
		// encoding variability if fields are added later.
		base, _ := json.Marshal(ExecutionStatusPayload{Type: "t"})
		padding := 7900 - len(base) - 20
		payload, _ := json.Marshal(ExecutionStatusPayload{
			Type:   "t",
			Domain: strings.Repeat("b", padding),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AuditProgressPayload{
			Type:        EventTypeAuditProgress,
			ExecutionID: "exec-1",
			Step:        "competitor_search",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "competitor_search")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ExecutionStatusPayload{
			Type:        EventTypeExecutionStatus,
			ExecutionID: "exec-456",
			Domain:      strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "exec-456")
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}
