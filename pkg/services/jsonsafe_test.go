package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeJSON(t *testing.T) {
	t.Run("non-finite floats become null", func(t *testing.T) {
		assert.Nil(t, SanitizeJSON(math.Inf(1)))
		assert.Nil(t, SanitizeJSON(math.Inf(-1)))
		assert.Nil(t, SanitizeJSON(math.NaN()))
		assert.Nil(t, SanitizeJSON(float32(math.NaN())))
	})

	t.Run("finite values pass through", func(t *testing.T) {
		assert.Equal(t, 1.5, SanitizeJSON(1.5))
		assert.Equal(t, "x", SanitizeJSON("x"))
		assert.Equal(t, true, SanitizeJSON(true))
		assert.Equal(t, 7, SanitizeJSON(7))
		assert.Nil(t, SanitizeJSON(nil))
	})

	t.Run("recurses into maps and slices", func(t *testing.T) {
		in := map[string]any{
			"score":  math.Inf(1),
			"series": []any{1.0, math.NaN(), "ok"},
			"nested": map[string]any{"v": math.Inf(-1)},
		}
		out := SanitizeJSON(in).(map[string]any)
		assert.Nil(t, out["score"])
		assert.Equal(t, []any{1.0, nil, "ok"}, out["series"])
		assert.Nil(t, out["nested"].(map[string]any)["v"])
	})

	t.Run("structs round-trip through json", func(t *testing.T) {
		type payload struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		}
		out := SanitizeJSON(payload{Name: "a", Score: 2})
		assert.Equal(t, map[string]any{"name": "a", "score": 2.0}, out)
	})

	t.Run("unserializable values degrade to strings", func(t *testing.T) {
		out := SanitizeJSON(make(chan int))
		_, isString := out.(string)
		assert.True(t, isString)
	})
}

func TestSanitizeJSONMap(t *testing.T) {
	assert.Nil(t, SanitizeJSONMap(nil))

	out := SanitizeJSONMap(map[string]any{"a": math.NaN(), "b": 2.0})
	assert.Nil(t, out["a"])
	assert.Equal(t, 2.0, out["b"])
}

func TestJSONEqual(t *testing.T) {
	assert.True(t, jsonEqual(map[string]any{"a": 1.0}, map[string]any{"a": 1.0}))
	assert.False(t, jsonEqual(map[string]any{"a": 1.0}, map[string]any{"a": 2.0}))
	assert.True(t, jsonEqual(nil, nil))
}
