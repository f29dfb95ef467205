package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trendscope.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Trends.MinArticles)
	assert.Equal(t, 5, cfg.Trends.MinClusterSize)
	assert.Equal(t, []int{7, 30, 90, 365}, cfg.Trends.WindowsDays)
	assert.Equal(t, 0.35, cfg.Trends.DriftThreshold)
	assert.Equal(t, 10, cfg.Audit.MaxCompetitors)
	assert.Equal(t, 10*time.Minute, cfg.Audit.WorkflowTimeouts["editorial_analysis"])
	assert.Equal(t, "mistral", cfg.LLM.Model)
	assert.Equal(t, "localhost:6334", cfg.Vector.URL)
}

func TestInitialize_FileOverlaysDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
trends:
  min_articles: 50
  drift_threshold: 0.5
llm:
  model: llama3
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Trends.MinArticles)
	assert.Equal(t, 0.5, cfg.Trends.DriftThreshold)
	assert.Equal(t, "llama3", cfg.LLM.Model)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, 5, cfg.Trends.MinClusterSize)
	assert.Equal(t, 42, int(cfg.Trends.Seed))
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BackendURL)
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitialize_EnvOverridesBeatFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
llm:
  model: llama3
`)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LLM_MODEL", "qwen")
	t.Setenv("VECTOR_STORE_URL", "qdrant.internal:6334")
	t.Setenv("MIN_CLIENT_ARTICLES_FOR_AUDIT", "2")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "qwen", cfg.LLM.Model)
	assert.Equal(t, "qdrant.internal:6334", cfg.Vector.URL)
	assert.Equal(t, 2, cfg.Audit.MinClientArticles)
}

func TestInitialize_TemplateExpansion(t *testing.T) {
	dir := writeConfig(t, `
vector_store:
  url: "{{.TEST_VECTOR_HOST}}:6334"
  api_key: "{{.TEST_VECTOR_KEY}}"
`)
	t.Setenv("TEST_VECTOR_HOST", "qdrant.cloud")
	t.Setenv("TEST_VECTOR_KEY", "s3cret")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "qdrant.cloud:6334", cfg.Vector.URL)
	assert.Equal(t, "s3cret", cfg.Vector.APIKey)
}

func TestInitialize_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"cluster size too small": "trends:\n  min_cluster_size: 1\n",
		"max below min":          "trends:\n  min_articles: 100\n  max_articles: 10\n",
		"reduced dims too large": "trends:\n  reduced_dims: 99\n",
		"competitor bound":       "audit:\n  max_competitors: 1\n",
		"effort shares":          "trends:\n  effort_distribution:\n    easy: 0.9\n    medium: 0.9\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Initialize(context.Background(), writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_VALUE", "expanded")

	out := ExpandEnv([]byte("key: {{.TEST_EXPAND_VALUE}}"))
	assert.Equal(t, "key: expanded", string(out))

	// Missing variables expand to empty rather than failing.
	out = ExpandEnv([]byte("key: {{.TEST_EXPAND_MISSING_VAR}}"))
	assert.Equal(t, "key: ", string(out))

	// Malformed templates pass through untouched.
	raw := []byte("pattern: '{{unclosed'")
	assert.Equal(t, raw, ExpandEnv(raw))
}
