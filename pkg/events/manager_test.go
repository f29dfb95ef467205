package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, _ int, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

// newWSServer wraps a ConnectionManager in an httptest server that upgrades
// every request to a WebSocket.
func newWSServer(t *testing.T, manager *ConnectionManager) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })
	return server
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	return manager, newWSServer(t, manager)
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnectionManager_ConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManager_Subscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := ExecutionChannel("exec-123")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})

	msg := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, channel, msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestConnectionManager_Broadcast(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	channel := ExecutionChannel("broadcast-test")
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: channel})
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn1) // subscription.confirmed
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": EventTypeAuditProgress, "domain": "example.com"})
	manager.Broadcast(channel, payload)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, EventTypeAuditProgress, msg["type"])
		assert.Equal(t, "example.com", msg["domain"])
	}
}

func TestConnectionManager_BroadcastIsolation(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server)
	conn2 := connectWS(t, server)
	readJSON(t, conn1)
	readJSON(t, conn2)

	ch1 := ExecutionChannel("iso-1")
	ch2 := ExecutionChannel("iso-2")
	writeClientMessage(t, conn1, ClientMessage{Action: "subscribe", Channel: ch1})
	readJSON(t, conn1)
	writeClientMessage(t, conn2, ClientMessage{Action: "subscribe", Channel: ch2})
	readJSON(t, conn2)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(ch1) == 1 && manager.subscriberCount(ch2) == 1
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "test", "target": "iso-1"})
	manager.Broadcast(ch1, payload)

	msg := readJSON(t, conn1)
	assert.Equal(t, "iso-1", msg["target"])

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn2.Read(readCtx)
	assert.Error(t, err, "conn2 must not receive another execution's broadcast")
}

func TestConnectionManager_BroadcastToUnknownChannel(t *testing.T) {
	manager, _ := setupTestManager(t)

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(ExecutionChannel("nobody-listens"), payload)
	})
}

func TestConnectionManager_PingPong(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_MultipleChannels(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	ch1 := ExecutionChannel("multi-1")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: ch1})
	readJSON(t, conn)
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalExecutionsChannel})
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(ch1) == 1 && manager.subscriberCount(GlobalExecutionsChannel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	p1, _ := json.Marshal(map[string]string{"type": EventTypePipelineStage, "from": "execution"})
	manager.Broadcast(ch1, p1)
	msg := readJSON(t, conn)
	assert.Equal(t, "execution", msg["from"])

	p2, _ := json.Marshal(map[string]string{"type": EventTypeExecutionStatus, "from": "global"})
	manager.Broadcast(GlobalExecutionsChannel, p2)
	msg = readJSON(t, conn)
	assert.Equal(t, "global", msg["from"])
}

func TestConnectionManager_Unsubscribe(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ExecutionChannel("unsub-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	writeClientMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 0
	}, 2*time.Second, 10*time.Millisecond)

	payload, _ := json.Marshal(map[string]string{"type": "should-not-arrive"})
	manager.Broadcast(channel, payload)

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "no message expected after unsubscribe")
}

func TestConnectionManager_ConcurrentBroadcast(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ExecutionChannel("concurrent-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	require.Eventually(t, func() bool {
		return manager.subscriberCount(channel) == 1
	}, 2*time.Second, 10*time.Millisecond)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			payload, _ := json.Marshal(map[string]interface{}{"type": EventTypeProgressTick, "idx": idx})
			manager.Broadcast(channel, payload)
		}(i)
	}
	wg.Wait()

	received := 0
	var firstErr error
	for i := 0; i < n; i++ {
		readCtx, readCancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, _, err := conn.Read(readCtx)
		readCancel()
		if err != nil {
			firstErr = err
			break
		}
		received++
	}
	assert.Equal(t, n, received, "should receive all broadcasts; first error: %v", firstErr)
}

func TestConnectionManager_CatchupNormal(t *testing.T) {
	events := []CatchupEvent{
		{ID: 10, Payload: map[string]interface{}{"type": EventTypeAuditProgress, "seq": float64(1)}},
		{ID: 11, Payload: map[string]interface{}{"type": EventTypePipelineStage, "seq": float64(2)}},
		{ID: 12, Payload: map[string]interface{}{"type": EventTypeExecutionStatus, "seq": float64(3)}},
	}

	manager := NewConnectionManager(&mockCatchupQuerier{events: events}, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ExecutionChannel("catchup-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	// Auto-catchup on subscribe delivers all prior events in order, with the
	// DB row ID injected as db_event_id.
	for i := 0; i < 3; i++ {
		msg := readJSON(t, conn)
		assert.Equal(t, float64(i+1), msg["seq"])
		assert.Equal(t, float64(events[i].ID), msg["db_event_id"])
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer readCancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "no overflow expected for a small catchup")
}

func TestConnectionManager_CatchupOverflow(t *testing.T) {
	manyEvents := make([]CatchupEvent, catchupLimit+5)
	for i := range manyEvents {
		manyEvents[i] = CatchupEvent{
			ID:      i + 1,
			Payload: map[string]interface{}{"type": EventTypeAuditProgress, "seq": i},
		}
	}

	manager := NewConnectionManager(&mockCatchupQuerier{events: manyEvents}, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ExecutionChannel("overflow-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	var overflowReceived bool
	for i := 0; i < catchupLimit+5; i++ {
		msg := readJSON(t, conn)
		if msg["type"] == "catchup.overflow" {
			overflowReceived = true
			assert.Equal(t, true, msg["has_more"])
			assert.Equal(t, channel, msg["channel"])
			break
		}
	}
	assert.True(t, overflowReceived, "expected catchup.overflow message")
}

func TestConnectionManager_CatchupQueryError(t *testing.T) {
	// A failing catchup query is logged, not fatal: the connection stays
	// usable.
	manager := NewConnectionManager(&mockCatchupQuerier{err: fmt.Errorf("database unreachable")}, 5*time.Second)
	server := newWSServer(t, manager)

	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ExecutionChannel("err-test")
	writeClientMessage(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn) // subscription.confirmed

	lastEventID := 0
	writeClientMessage(t, conn, ClientMessage{Action: "catchup", Channel: channel, LastEventID: &lastEventID})
	time.Sleep(100 * time.Millisecond)

	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_EmptyChannelValidation(t *testing.T) {
	_, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	lastEventID := 0
	for _, action := range []ClientMessage{
		{Action: "subscribe", Channel: ""},
		{Action: "unsubscribe", Channel: ""},
		{Action: "catchup", Channel: "", LastEventID: &lastEventID},
	} {
		writeClientMessage(t, conn, action)
		msg := readJSON(t, conn)
		assert.Equal(t, "error", msg["type"], "action %q without channel", action.Action)
		assert.Contains(t, msg["message"], "channel is required")
	}

	// Validation errors never kill the connection.
	writeClientMessage(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManager_SetListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 5*time.Second)
	assert.Nil(t, manager.listener)

	listener := NewNotifyListener("host=localhost", manager, slog.Default())
	manager.SetListener(listener)

	manager.listenerMu.RLock()
	assert.Equal(t, listener, manager.listener)
	manager.listenerMu.RUnlock()
}

func TestConnectionManager_CleanupOnDisconnect(t *testing.T) {
	manager, server := setupTestManager(t)

	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)

	_, _, err = conn.Read(ctx) // connection.established
	require.NoError(t, err)

	channel := ExecutionChannel("cleanup-test")
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, subMsg))
	_, _, err = conn.Read(ctx) // subscription.confirmed
	require.NoError(t, err)

	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, manager.subscriberCount(channel))

	payload, _ := json.Marshal(map[string]string{"type": "test"})
	assert.NotPanics(t, func() {
		manager.Broadcast(channel, payload)
	})
}
