package llm

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

var (
	jsonFenceRe  = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	plainFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)```")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	singleQuoteKey = regexp.MustCompile(`'([A-Za-z0-9_]+)'\s*:`)
)

// ParseJSONResponse extracts a JSON object from an LLM response. Models wrap
// JSON in fences, prepend prose, and emit almost-JSON, so five strategies
// are tried in order:
//
//  1. content of a ```json fence
//  2. content of a plain ``` fence
//  3. the span from the first '{' to the last '}'
//  4. strategy 3 after repairing common issues (trailing commas,
//     single-quoted keys)
//  5. the whole response verbatim
//
// On total failure the raw response is preserved under "raw_response" so the
// pipeline can continue with a degraded record instead of aborting.
func ParseJSONResponse(response string, logger *slog.Logger) map[string]any {
	for _, candidate := range jsonCandidates(response) {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
			return parsed
		}
	}

	logger.Warn("all JSON extraction strategies failed, keeping raw response",
		"response_chars", len(response))
	return map[string]any{"raw_response": response}
}

func jsonCandidates(response string) []string {
	var candidates []string

	if m := jsonFenceRe.FindStringSubmatch(response); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if m := plainFenceRe.FindStringSubmatch(response); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	first := strings.Index(response, "{")
	last := strings.LastIndex(response, "}")
	if first >= 0 && last > first {
		span := response[first : last+1]
		candidates = append(candidates, span, repairJSON(span))
	}

	candidates = append(candidates, strings.TrimSpace(response))
	return candidates
}

// repairJSON fixes the issues local models produce most often.
func repairJSON(s string) string {
	s = trailingComma.ReplaceAllString(s, "$1")
	s = singleQuoteKey.ReplaceAllString(s, `"$1":`)
	return s
}

// StringSlice coerces a decoded JSON value into []string, tolerating
// mixed-type arrays.
func StringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok && s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
