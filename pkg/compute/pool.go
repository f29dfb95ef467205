package compute

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
)

// PhysicalCores returns the physical core count, falling back to
// runtime.NumCPU when detection fails. CPU-bound clustering phases scale
// with physical cores, not hyperthreads.
func PhysicalCores() int {
	count, err := cpu.Counts(false)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}

// Pool bounds CPU-heavy work to a fixed number of concurrent tasks so the
// clusterer never starves the I/O goroutines.
type Pool struct {
	sem    chan struct{}
	logger *slog.Logger
}

// NewPool creates a pool with the given size; size <= 0 uses PhysicalCores.
func NewPool(size int, logger *slog.Logger) *Pool {
	if size <= 0 {
		size = PhysicalCores()
	}
	logger.Info("compute pool sized", "workers", size)
	return &Pool{
		sem:    make(chan struct{}, size),
		logger: logger.With("component", "compute"),
	}
}

// Run executes fn once a slot is available. It returns the context error if
// the caller gives up while waiting.
func (p *Pool) Run(ctx context.Context, fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()
	return fn()
}

// Size returns the pool's concurrency bound.
func (p *Pool) Size() int {
	return cap(p.sem)
}
