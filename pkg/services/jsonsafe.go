package services

import (
	"encoding/json"
	"fmt"
	"math"
)

// SanitizeJSON normalizes a value for storage in a JSONB column.
//
// Workflow outputs routinely carry computed floats; ±Inf and NaN are legal
// in Go but not in JSON, and a single bad float would fail the whole row
// write. Non-serializable values (channels, funcs inside maps built from
// dynamic LLM output) are coerced to their string representation instead of
// aborting the update.
func SanitizeJSON(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil
		}
		return val
	case float32:
		f := float64(val)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = SanitizeJSON(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = SanitizeJSON(inner)
		}
		return out
	case string, bool, int, int32, int64, uint, uint32, uint64, json.Number:
		return val
	default:
		// Round-trip through encoding/json; anything that survives is fine.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		var decoded any
		if err := json.Unmarshal(b, &decoded); err != nil {
			return fmt.Sprintf("%v", val)
		}
		return SanitizeJSON(decoded)
	}
}

// jsonEqual compares two values by their canonical JSON encoding.
func jsonEqual(a, b any) bool {
	aj, errA := json.Marshal(SanitizeJSON(a))
	bj, errB := json.Marshal(SanitizeJSON(b))
	if errA != nil || errB != nil {
		return false
	}
	return string(aj) == string(bj)
}

// SanitizeJSONMap applies SanitizeJSON to every value of a map, preserving
// the map type expected by the Ent JSON fields.
func SanitizeJSONMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = SanitizeJSON(v)
	}
	return out
}
