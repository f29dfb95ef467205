package embeddings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-15T10:30:00Z", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-03-15T10:30:00.123456789Z", time.Date(2026, 3, 15, 10, 30, 0, 123456789, time.UTC)},
		{"2026-03-15T12:30:00+02:00", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		// Naive timestamps are treated as UTC.
		{"2026-03-15T10:30:00", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-03-15 10:30:00", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseISODate(tc.in)
		require.True(t, ok, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
		assert.Equal(t, time.UTC, got.Location(), tc.in)
	}

	for _, bad := range []string{"", "yesterday", "15/03/2026", "2026-13-45"} {
		_, ok := ParseISODate(bad)
		assert.False(t, ok, bad)
	}
}

func TestL2Normalize(t *testing.T) {
	out := L2Normalize([]float32{3, 4})
	require.Len(t, out, 2)
	assert.InDelta(t, 0.6, out[0], 1e-6)
	assert.InDelta(t, 0.8, out[1], 1e-6)

	var sum float64
	for _, v := range L2Normalize([]float32{1, 2, 3, 4}) {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	zero := []float32{0, 0, 0}
	assert.Equal(t, zero, L2Normalize(zero), "zero vectors pass through")
}

func TestDecodePayload(t *testing.T) {
	p := decodePayload(map[string]any{
		"domain":         "news.example.com",
		"url":            "https://news.example.com/a",
		"title":          "A headline",
		"content_text":   "body",
		"author":         "jo",
		"published_date": "2026-01-02T03:04:05Z",
	}, "fallback.example.com")

	assert.Equal(t, "news.example.com", p.Domain)
	assert.Equal(t, "https://news.example.com/a", p.URL)
	assert.Equal(t, "A headline", p.Title)
	require.NotNil(t, p.PublishedDate)
	assert.Equal(t, 2026, p.PublishedDate.Year())

	// Missing or empty domain falls back to the collection's domain; an
	// unparseable date is dropped rather than guessed.
	p = decodePayload(map[string]any{
		"domain":         "",
		"published_date": "not a date",
	}, "fallback.example.com")
	assert.Equal(t, "fallback.example.com", p.Domain)
	assert.Nil(t, p.PublishedDate)

	p = decodePayload(nil, "fallback.example.com")
	assert.Equal(t, "fallback.example.com", p.Domain)
}
