// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/trendscope/trendscope/pkg/config"
	"github.com/trendscope/trendscope/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes terminal workflow executions past the retention window
//   - Removes persisted realtime events past their TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config     config.RetentionConfig
	executions *services.ExecutionService
	events     *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg config.RetentionConfig,
	executions *services.ExecutionService,
	events *services.EventService,
) *Service {
	return &Service{
		config:     cfg,
		executions: executions,
		events:     events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll executes one retention sweep. Failures are logged; a failed sweep
// is retried on the next tick.
func (s *Service) RunAll(ctx context.Context) {
	if s.config.ExecutionRetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -s.config.ExecutionRetentionDays)
		count, err := s.executions.SoftDeleteTerminalBefore(ctx, cutoff)
		if err != nil {
			slog.Error("Retention: soft-delete executions failed", "error", err)
		} else if count > 0 {
			slog.Info("Retention: soft-deleted old executions", "count", count)
		}
	}

	if s.config.EventTTL > 0 {
		count, err := s.events.CleanupExpiredEvents(ctx, s.config.EventTTL)
		if err != nil {
			slog.Error("Retention: event cleanup failed", "error", err)
		} else if count > 0 {
			slog.Info("Retention: removed expired events", "count", count)
		}
	}
}
