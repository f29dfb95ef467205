package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *OwnerRegistry {
	return &OwnerRegistry{
		owner:  OwnerNone,
		settle: time.Millisecond,
		logger: slog.Default(),
	}
}

func TestOwnerRegistry_AcquireAndRelease(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	assert.Equal(t, OwnerNone, r.Owner())

	released := false
	require.NoError(t, r.Acquire(ctx, OwnerOllamaLLM, func(context.Context) error {
		released = true
		return nil
	}))
	assert.Equal(t, OwnerOllamaLLM, r.Owner())

	require.NoError(t, r.Release(ctx))
	assert.True(t, released)
	assert.Equal(t, OwnerNone, r.Owner())

	// Releasing the unowned state is a no-op.
	require.NoError(t, r.Release(ctx))
}

func TestOwnerRegistry_HandoverReleasesPreviousOwner(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	released := false
	require.NoError(t, r.Acquire(ctx, OwnerOllamaLLM, func(context.Context) error {
		released = true
		return nil
	}))
	require.NoError(t, r.Acquire(ctx, OwnerImageGenerator, nil))

	assert.True(t, released, "handover must run the previous owner's release hook")
	assert.Equal(t, OwnerImageGenerator, r.Owner())
}

func TestOwnerRegistry_ReacquireIsNoOp(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	calls := 0
	require.NoError(t, r.Acquire(ctx, OwnerOllamaLLM, func(context.Context) error {
		calls++
		return nil
	}))
	require.NoError(t, r.Acquire(ctx, OwnerOllamaLLM, nil))

	assert.Zero(t, calls)
	assert.Equal(t, OwnerOllamaLLM, r.Owner())
}

func TestOwnerRegistry_ReleaseFailureKeepsOwner(t *testing.T) {
	r := newTestRegistry()
	ctx := context.Background()

	boom := errors.New("model unload failed")
	require.NoError(t, r.Acquire(ctx, OwnerOllamaVision, func(context.Context) error {
		return boom
	}))

	err := r.Acquire(ctx, OwnerOllamaLLM, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, OwnerOllamaVision, r.Owner(), "failed handover must not change ownership")
}

func TestOwnerRegistry_AcquireNoneRejected(t *testing.T) {
	r := newTestRegistry()
	assert.Error(t, r.Acquire(context.Background(), OwnerNone, nil))
}
