package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// GPUOwner identifies which model family currently holds the GPU.
type GPUOwner string

const (
	OwnerNone           GPUOwner = "none"
	OwnerOllamaLLM      GPUOwner = "ollama-llm"
	OwnerOllamaVision   GPUOwner = "ollama-vision"
	OwnerImageGenerator GPUOwner = "local-image-generator"
)

// ReleaseFunc unloads the current owner's model from the GPU.
type ReleaseFunc func(ctx context.Context) error

// OwnerRegistry is the process-wide singleton tracking GPU ownership.
// GPU-resident models are single-owner: acquiring for a new owner releases
// the previous one and waits a short settling delay before the handover.
type OwnerRegistry struct {
	mu      sync.Mutex
	owner   GPUOwner
	release ReleaseFunc
	settle  time.Duration
	logger  *slog.Logger
}

var (
	registryOnce sync.Once
	registry     *OwnerRegistry
)

// Registry returns the process-wide owner registry.
func Registry(logger *slog.Logger) *OwnerRegistry {
	registryOnce.Do(func() {
		registry = &OwnerRegistry{
			owner:  OwnerNone,
			settle: 2 * time.Second,
			logger: logger.With("component", "gpu_owner"),
		}
	})
	return registry
}

// Owner returns the current GPU owner.
func (r *OwnerRegistry) Owner() GPUOwner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owner
}

// Acquire transitions ownership to the requested owner. If another owner
// holds the GPU its release hook runs first, followed by the settling delay.
// Re-acquiring the current owner is a no-op.
func (r *OwnerRegistry) Acquire(ctx context.Context, owner GPUOwner, release ReleaseFunc) error {
	if owner == OwnerNone {
		return fmt.Errorf("cannot acquire owner %q, use Release", owner)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owner == owner {
		return nil
	}

	if r.owner != OwnerNone && r.release != nil {
		r.logger.Info("releasing GPU owner", "from", r.owner, "to", owner)
		if err := r.release(ctx); err != nil {
			return fmt.Errorf("failed to release GPU owner %s: %w", r.owner, err)
		}
		select {
		case <-time.After(r.settle):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.owner = owner
	r.release = release
	r.logger.Info("GPU owner acquired", "owner", owner)
	return nil
}

// Release returns the GPU to the unowned state, running the owner's release
// hook if present.
func (r *OwnerRegistry) Release(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.owner == OwnerNone {
		return nil
	}
	if r.release != nil {
		if err := r.release(ctx); err != nil {
			return fmt.Errorf("failed to release GPU owner %s: %w", r.owner, err)
		}
	}
	r.logger.Info("GPU owner released", "owner", r.owner)
	r.owner = OwnerNone
	r.release = nil
	return nil
}
