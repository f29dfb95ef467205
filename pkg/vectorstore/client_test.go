package vectorstore

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionName(t *testing.T) {
	cases := map[string]string{
		"example.com":         "articles__example_com",
		"News.Example.COM":    "articles__news_example_com",
		" spaced.example.io ": "articles__spaced_example_io",
		"a-b.example.com":     "articles__a_b_example_com",
	}
	for domain, want := range cases {
		assert.Equal(t, want, CollectionName(domain), domain)
	}

	// Same domain, same collection, regardless of caller formatting.
	assert.Equal(t, CollectionName("example.com"), CollectionName("  EXAMPLE.com"))
}

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		in      string
		host    string
		port    int
		useTLS  bool
		wantErr bool
	}{
		{in: "", host: "localhost", port: 6334},
		{in: "qdrant.internal", host: "qdrant.internal", port: 6334},
		{in: "qdrant.internal:7000", host: "qdrant.internal", port: 7000},
		{in: "http://qdrant.internal:6334", host: "qdrant.internal", port: 6334},
		{in: "http://qdrant.internal", host: "qdrant.internal", port: 6334},
		{in: "https://qdrant.cloud", host: "qdrant.cloud", port: 443, useTLS: true},
		{in: "https://qdrant.cloud:7443", host: "qdrant.cloud", port: 7443, useTLS: true},
		{in: "qdrant.internal:notaport", wantErr: true},
	}
	for _, tc := range cases {
		host, port, useTLS, err := parseEndpoint(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.host, host, tc.in)
		assert.Equal(t, tc.port, port, tc.in)
		assert.Equal(t, tc.useTLS, useTLS, tc.in)
	}
}

func TestPointIDString(t *testing.T) {
	assert.Empty(t, pointIDString(nil))
	assert.Equal(t, "9b2e7c54-0000-4000-8000-000000000001",
		pointIDString(qdrant.NewID("9b2e7c54-0000-4000-8000-000000000001")))
	assert.Equal(t, "42", pointIDString(qdrant.NewIDNum(42)))
}

func TestValueConversion(t *testing.T) {
	payload := qdrant.NewValueMap(map[string]any{
		"title":     "headline",
		"size":      int64(3),
		"score":     0.75,
		"published": true,
		"tags":      []any{"a", "b"},
		"nested":    map[string]any{"k": "v"},
	})

	out := payloadToMap(payload)
	assert.Equal(t, "headline", out["title"])
	assert.Equal(t, int64(3), out["size"])
	assert.Equal(t, 0.75, out["score"])
	assert.Equal(t, true, out["published"])
	assert.Equal(t, []any{"a", "b"}, out["tags"])
	assert.Equal(t, map[string]any{"k": "v"}, out["nested"])

	assert.Nil(t, payloadToMap(nil))
}
