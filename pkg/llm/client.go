package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Config holds LLM backend settings.
type Config struct {
	BackendURL     string
	DefaultModel   string
	Timeout        time.Duration
	ModelCacheSize int
}

// modelHandle pairs a backend handle with the mutex serializing calls to it.
// The backend runs one model on one GPU; concurrent generations against the
// same model thrash it.
type modelHandle struct {
	llm *ollama.LLM
	mu  sync.Mutex
}

// Client talks to the ollama-compatible backend. Handles are created lazily
// per model and kept in a small LRU.
type Client struct {
	cfg     Config
	logger  *slog.Logger
	mu      sync.Mutex
	handles *lru.Cache[string, *modelHandle]
}

// NewClient creates an LLM client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.ModelCacheSize <= 0 {
		cfg.ModelCacheSize = 4
	}

	handles, err := lru.New[string, *modelHandle](cfg.ModelCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create model cache: %w", err)
	}

	logger.Info("LLM client configured",
		"backend", cfg.BackendURL,
		"model", cfg.DefaultModel,
		"timeout", cfg.Timeout)

	return &Client{
		cfg:     cfg,
		logger:  logger.With("component", "llm"),
		handles: handles,
	}, nil
}

// DefaultModel returns the configured default model name.
func (c *Client) DefaultModel() string {
	return c.cfg.DefaultModel
}

func (c *Client) handle(model string) (*modelHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.handles.Get(model); ok {
		return h, nil
	}

	backend, err := ollama.New(
		ollama.WithServerURL(c.cfg.BackendURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend handle for model %s: %w", model, err)
	}

	h := &modelHandle{llm: backend}
	c.handles.Add(model, h)
	return h, nil
}

// Generate runs a single completion against the given model. Calls against
// the same model are serialized.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = c.cfg.DefaultModel
	}

	h, err := c.handle(model)
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := Registry(c.logger).Acquire(ctx, OwnerOllamaLLM, nil); err != nil {
		return "", fmt.Errorf("failed to acquire GPU for model %s: %w", model, err)
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, h.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("generation failed on model %s: %w", model, err)
	}

	c.logger.Debug("generation complete",
		"model", model,
		"prompt_chars", len(prompt),
		"response_chars", len(response),
		"duration", time.Since(start))
	return response, nil
}
