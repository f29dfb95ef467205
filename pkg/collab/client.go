package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// httpClient is the shared retrying JSON client under the typed
// collaborator clients. Transient failures (connection errors, 5xx) retry
// with exponential backoff; 4xx are permanent and surface immediately.
type httpClient struct {
	base        string
	client      *http.Client
	maxRetries  uint64
	minInterval time.Duration
	maxInterval time.Duration
	logger      *slog.Logger
}

// ClientConfig holds shared collaborator client settings.
type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	MinInterval time.Duration
	MaxInterval time.Duration
}

func newHTTPClient(cfg ClientConfig, logger *slog.Logger, name string) *httpClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = time.Second
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 10 * time.Second
	}
	return &httpClient{
		base:        cfg.BaseURL,
		client:      &http.Client{Timeout: cfg.Timeout},
		maxRetries:  uint64(cfg.MaxRetries - 1),
		minInterval: cfg.MinInterval,
		maxInterval: cfg.MaxInterval,
		logger:      logger.With("component", "collab", "service", name),
	}
}

// PermanentError marks a non-retryable collaborator failure.
type PermanentError struct {
	StatusCode int
	Body       string
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("collaborator returned %d: %s", e.StatusCode, e.Body)
}

// postJSON posts a JSON body and decodes the JSON response into out.
func (c *httpClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err // transient, retry
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("collaborator returned %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(&PermanentError{StatusCode: resp.StatusCode, Body: string(respBody)})
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.minInterval
	policy.MaxInterval = c.maxInterval

	err = backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx),
		func(err error, wait time.Duration) {
			c.logger.Warn("collaborator call failed, retrying",
				"path", path,
				"wait", wait,
				"error", err)
		},
	)
	if err != nil {
		return fmt.Errorf("POST %s failed: %w", path, err)
	}
	return nil
}
