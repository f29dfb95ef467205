package events

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
	"github.com/trendscope/trendscope/test/util"
)

// TestMultiReplica_EventCrossesProcessBoundary simulates two API pods sharing
// one database: the pod running the audit worker publishes, and a WebSocket
// client connected to the other pod receives the event through NOTIFY.
func TestMultiReplica_EventCrossesProcessBoundary(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	// Replica A: runs the worker, owns the publisher.
	clientA := shared.NewClient(t)
	publisher := NewEventPublisher(clientA.DB())

	executionID := uuid.New().String()
	_, err := clientA.WorkflowExecution.Create().
		SetID(executionID).
		SetWorkflowType(workflowexecution.WorkflowTypeAuditOrchestrator).
		SetDomain("replica.example.com").
		SetStatus(workflowexecution.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	// Replica B: serves the WebSocket client, owns listener and manager.
	clientB := shared.NewClient(t)
	eventService := services.NewEventService(clientB.Client)
	manager := NewConnectionManager(NewEventServiceAdapter(eventService), 5*time.Second)

	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager, slog.Default())
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := newWSServer(t, manager)
	conn := connectWS(t, server)
	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])

	channel := ExecutionChannel(executionID)
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	msg = readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond)

	err = publisher.PublishAuditProgress(ctx, AuditProgressPayload{
		ExecutionID: executionID,
		Domain:      "replica.example.com",
		Step:        "competitor_search",
		Status:      "completed",
		Progress:    40,
	})
	require.NoError(t, err)

	msg = readJSON(t, conn)
	assert.Equal(t, EventTypeAuditProgress, msg["type"])
	assert.Equal(t, "competitor_search", msg["step"])
	assert.Equal(t, executionID, msg["execution_id"])

	// The row persisted by replica A is visible to replica B's catchup path.
	events, err := eventService.GetEventsSince(ctx, channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, executionID, events[0].ExecutionID)
}
