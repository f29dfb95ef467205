package services

import (
	"context"
	"time"

	"github.com/trendscope/trendscope/ent"
	"github.com/trendscope/trendscope/ent/event"
)

// EventService reads and prunes the persisted realtime event stream. Writes
// go through the publisher's transactional insert+NOTIFY path, not here.
type EventService struct {
	client *ent.Client
}

// NewEventService creates an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel with id > sinceID, oldest
// first. A limit of 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, classifyDBError("get events since", err)
	}
	return events, nil
}

// CleanupExecutionEvents removes all events belonging to an execution.
func (s *EventService) CleanupExecutionEvents(ctx context.Context, executionID string) (int, error) {
	count, err := s.client.Event.Delete().
		Where(event.ExecutionIDEQ(executionID)).
		Exec(ctx)
	if err != nil {
		return 0, classifyDBError("cleanup execution events", err)
	}
	return count, nil
}

// CleanupExpiredEvents removes events older than the TTL.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, classifyDBError("cleanup expired events", err)
	}
	return count, nil
}
