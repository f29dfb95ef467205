package events

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/ent/workflowexecution"
	"github.com/trendscope/trendscope/pkg/database"
	"github.com/trendscope/trendscope/pkg/services"
	testdb "github.com/trendscope/trendscope/test/database"
	"github.com/trendscope/trendscope/test/util"
)

// streamingTestEnv wires publisher → PostgreSQL NOTIFY → listener → manager
// → WebSocket against a real database.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	executionID  string
	channel      string // execution:<executionID>
}

func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// A real execution row so events carry a valid execution_id.
	executionID := uuid.New().String()
	_, err := dbClient.WorkflowExecution.Create().
		SetID(executionID).
		SetWorkflowType(workflowexecution.WorkflowTypeAuditOrchestrator).
		SetDomain("stream.example.com").
		SetStatus(workflowexecution.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	manager := NewConnectionManager(NewEventServiceAdapter(eventService), 5*time.Second)

	// NOTIFY/LISTEN is database-level, not schema-level, so the listener gets
	// the base connection string without the per-test search_path.
	listener := NewNotifyListener(util.GetBaseConnectionString(t), manager, slog.Default())
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := newWSServer(t, manager)

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		executionID:  executionID,
		channel:      ExecutionChannel(executionID),
	}
}

// subscribeAndWait connects a WebSocket, subscribes to the env's execution
// channel, and waits until the PG LISTEN is actually active.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := connectWS(t, env.server)

	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishAuditProgress(ctx, AuditProgressPayload{
		ExecutionID: env.executionID,
		Domain:      "stream.example.com",
		Step:        "editorial_analysis",
		Status:      "running",
		Progress:    10,
	})
	require.NoError(t, err)

	err = env.publisher.PublishPipelineStage(ctx, PipelineStagePayload{
		ExecutionID: env.executionID,
		PipelineID:  1,
		Stage:       1,
		StageName:   "clustering",
		Status:      "completed",
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.executionID, events[0].ExecutionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeAuditProgress, events[0].Payload["type"])
	assert.Equal(t, "editorial_analysis", events[0].Payload["step"])

	assert.Equal(t, EventTypePipelineStage, events[1].Payload["type"])
	assert.Equal(t, "clustering", events[1].Payload["stage_name"])

	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	err := env.publisher.PublishProgressTick(ctx, ProgressTickPayload{
		ExecutionID: env.executionID,
		Step:        "scraping",
		Done:        7,
		Total:       40,
		Progress:    17.5,
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "progress ticks must not be persisted")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishAuditProgress(ctx, AuditProgressPayload{
		ExecutionID: env.executionID,
		Domain:      "stream.example.com",
		Step:        "trend_pipeline",
		Status:      "running",
		Progress:    60,
	})
	require.NoError(t, err)

	// Event arrives via pg_notify → listener → manager → WebSocket.
	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeAuditProgress, msg["type"])
	assert.Equal(t, "trend_pipeline", msg["step"])
	assert.Equal(t, env.executionID, msg["execution_id"])
	assert.Equal(t, float64(60), msg["progress"])
	assert.NotNil(t, msg["db_event_id"], "persisted events carry db_event_id for catchup tracking")
}

func TestIntegration_TransientTickDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishProgressTick(ctx, ProgressTickPayload{
		ExecutionID: env.executionID,
		Step:        "scraping",
		Done:        12,
		Total:       40,
		Progress:    30,
	})
	require.NoError(t, err)

	msg := readJSON(t, conn)
	assert.Equal(t, EventTypeProgressTick, msg["type"])
	assert.Equal(t, float64(12), msg["done"])
	assert.Nil(t, msg["db_event_id"], "transient events have no DB row")

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestIntegration_AuditProgressSequence(t *testing.T) {
	// A full step sequence: every transition is persisted in order, and a
	// subscriber sees each one live.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	steps := []struct {
		step     string
		status   string
		progress float64
	}{
		{"editorial_analysis", "running", 0},
		{"editorial_analysis", "completed", 20},
		{"competitor_search", "running", 20},
		{"competitor_search", "completed", 40},
		{"", "completed", 100}, // audit-level terminal event
	}

	for _, s := range steps {
		err := env.publisher.PublishAuditProgress(ctx, AuditProgressPayload{
			ExecutionID: env.executionID,
			Domain:      "stream.example.com",
			Step:        s.step,
			Status:      s.status,
			Progress:    s.progress,
		})
		require.NoError(t, err)

		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeAuditProgress, msg["type"])
		assert.Equal(t, s.status, msg["status"])
		assert.Equal(t, s.progress, msg["progress"])
		if s.step == "" {
			assert.Nil(t, msg["step"], "audit-level events omit the step field")
		} else {
			assert.Equal(t, s.step, msg["step"])
		}
	}

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, len(steps))
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate three persisted events before any client connects.
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishPipelineStage(ctx, PipelineStagePayload{
			ExecutionID: env.executionID,
			PipelineID:  1,
			Stage:       i,
			StageName:   "stage",
			Status:      "completed",
		})
		require.NoError(t, err)
	}

	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// A late subscriber gets all prior events via auto-catchup.
	conn := connectWS(t, env.server)
	msg := readJSON(t, conn)
	require.Equal(t, "connection.established", msg["type"])

	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 1; i <= 3; i++ {
		msg = readJSON(t, conn)
		assert.Equal(t, EventTypePipelineStage, msg["type"])
		assert.Equal(t, float64(i), msg["stage"])
	}

	// Explicit catchup from the first event's ID returns only events 2 and 3.
	writeClientMessage(t, conn, ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &firstEventID,
	})
	for i := 2; i <= 3; i++ {
		msg = readJSON(t, conn)
		assert.Equal(t, float64(i), msg["stage"])
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "no further messages expected after catchup")
}
