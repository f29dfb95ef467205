package compute

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	pool := NewPool(2, slog.Default())
	require.Equal(t, 2, pool.Size())

	var active, peak atomic.Int32
	var group errgroup.Group
	for i := 0; i < 10; i++ {
		group.Go(func() error {
			return pool.Run(context.Background(), func() error {
				n := active.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				active.Add(-1)
				return nil
			})
		})
	}
	require.NoError(t, group.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestPool_RunReturnsTaskError(t *testing.T) {
	pool := NewPool(1, slog.Default())
	err := pool.Run(context.Background(), func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPool_ContextCancelledWhileWaiting(t *testing.T) {
	pool := NewPool(1, slog.Default())

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = pool.Run(context.Background(), func() error {
			<-release
			return nil
		})
	}()

	// Wait until the slot is held.
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		return pool.Run(ctx, func() error { return nil }) != nil
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Run(ctx, func() error {
		t.Fatal("task must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	wg.Wait()
}

func TestPool_DefaultSize(t *testing.T) {
	pool := NewPool(0, slog.Default())
	assert.Equal(t, PhysicalCores(), pool.Size())
	assert.Positive(t, pool.Size())
}
