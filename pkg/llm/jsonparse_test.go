package llm

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONResponse(t *testing.T) {
	logger := slog.Default()

	t.Run("json fence", func(t *testing.T) {
		response := "Here is the analysis:\n```json\n{\"synthesis\": \"rising\"}\n```\nHope this helps!"
		parsed := ParseJSONResponse(response, logger)
		assert.Equal(t, "rising", parsed["synthesis"])
	})

	t.Run("plain fence", func(t *testing.T) {
		response := "```\n{\"synthesis\": \"stable\"}\n```"
		parsed := ParseJSONResponse(response, logger)
		assert.Equal(t, "stable", parsed["synthesis"])
	})

	t.Run("json fence preferred over plain fence", func(t *testing.T) {
		response := "```\n{\"which\": \"plain\"}\n```\n```json\n{\"which\": \"json\"}\n```"
		parsed := ParseJSONResponse(response, logger)
		assert.Equal(t, "json", parsed["which"])
	})

	t.Run("brace span inside prose", func(t *testing.T) {
		response := `Sure! The result is {"synthesis": "hot", "opportunities": ["a"]} as requested.`
		parsed := ParseJSONResponse(response, logger)
		assert.Equal(t, "hot", parsed["synthesis"])
	})

	t.Run("repairs trailing commas and single-quoted keys", func(t *testing.T) {
		response := `{'synthesis': "ok", "opportunities": ["a", "b",],}`
		parsed := ParseJSONResponse(response, logger)
		assert.Equal(t, "ok", parsed["synthesis"])
	})

	t.Run("bare json object", func(t *testing.T) {
		parsed := ParseJSONResponse(`{"synthesis": "flat"}`, logger)
		assert.Equal(t, "flat", parsed["synthesis"])
	})

	t.Run("unparseable response degrades to raw", func(t *testing.T) {
		response := "I cannot produce JSON today."
		parsed := ParseJSONResponse(response, logger)
		require.Len(t, parsed, 1)
		assert.Equal(t, response, parsed["raw_response"])
	})
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringSlice([]any{"a", "b"}))
	assert.Equal(t, []string{"a"}, StringSlice([]any{"a", 3, ""}))
	assert.Equal(t, []string{"solo"}, StringSlice("solo"))
	assert.Nil(t, StringSlice(nil))
	assert.Nil(t, StringSlice(42))
	assert.Empty(t, StringSlice([]any{}))
}
