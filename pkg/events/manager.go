package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps a single catchup response. A client that missed more
// events than this gets a catchup.overflow message and is expected to reload
// the execution state over REST instead of paginating.
const catchupLimit = 200

// listenTimeout bounds the synchronous LISTEN issued for a channel's first
// subscriber. A stalled listener connection must not wedge the client's read
// loop forever.
const listenTimeout = 10 * time.Second

// CatchupEvent is one persisted event row replayed to a late subscriber.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier reads persisted events for replay. Implemented by
// services.EventService via the adapter in catchup_adapter.go.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager owns every WebSocket client of this process and fans
// NOTIFY payloads out to the connections subscribed to each channel. One
// instance per process; cross-process delivery rides on Postgres NOTIFY.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	// channel name → connection IDs subscribed to it
	subscribers map[string]map[string]struct{}

	catchup CatchupQuerier

	// listener is wired after construction, once the LISTEN connection is
	// up. Guarded separately so Broadcast never contends with SetListener.
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection is one WebSocket client.
//
// subscriptions is only touched from the goroutine running this connection's
// read loop (HandleConnection and its deferred cleanup), so it carries no
// lock. Any future cross-goroutine mutation needs one.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]struct{}
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager builds a manager; the listener is attached later via
// SetListener.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		subscribers:  make(map[string]map[string]struct{}),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener attaches the LISTEN/UNLISTEN backend. Called once at startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	m.listener = l
	m.listenerMu.Unlock()
}

// HandleConnection runs one client's session: register, announce, then read
// client messages until the socket closes. Blocks for the connection's
// lifetime; the WS handler calls it after the upgrade.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.New().String(),
		Conn:          conn,
		subscriptions: make(map[string]struct{}),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.track(c)
	defer m.untrack(c)

	m.writeJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Dropping malformed WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

// Broadcast delivers an already-marshaled event to every subscriber of the
// channel. Connection pointers are snapshotted first so slow writes (bounded
// by writeTimeout each) never run under the lock.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.mu.RLock()
	targets := make([]*Connection, 0, len(m.subscribers[channel]))
	for id := range m.subscribers[channel] {
		if c, ok := m.connections[id]; ok {
			targets = append(targets, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range targets {
		if err := m.write(c, event); err != nil {
			slog.Warn("WebSocket send failed", "connection_id", c.ID, "channel", channel, "error", err)
		}
	}
}

// ActiveConnections reports the number of open WebSocket clients.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount lets tests poll subscription state instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[channel])
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.writeJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.writeJSON(c, map[string]string{
				"type":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.writeJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Replay everything persisted so far; a subscriber joining mid-audit
		// sees the steps that already ran.
		m.replay(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.writeJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.writeJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.replay(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.writeJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe adds the connection to the channel and, for the channel's first
// subscriber, issues a synchronous LISTEN. The LISTEN must complete before
// the auto-replay runs, otherwise an event published between replay and
// LISTEN would be lost. A failed LISTEN is returned to the caller so the
// client gets subscription.error rather than a false confirmation.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.mu.Lock()
	first := false
	if _, ok := m.subscribers[channel]; !ok {
		m.subscribers[channel] = make(map[string]struct{})
		first = true
	}
	m.subscribers[channel][c.ID] = struct{}{}
	m.mu.Unlock()

	if first {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("LISTEN failed", "channel", channel, "error", err)
				m.dropBrokenChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.subscriptions[channel] = struct{}{}
	return nil
}

// dropBrokenChannel tears down a channel whose LISTEN failed. Between the
// map insert above and Subscribe returning, other connections may have
// joined the channel and been confirmed (they saw it already existed and
// skipped LISTEN). Those subscribers are orphaned: confirmed, but with no
// LISTEN behind them. They get subscription.error here; the triggering
// connection is told through the error return instead.
//
// Clients must treat subscription.error as authoritative even after a
// confirmation: discard buffered events for the channel and re-subscribe
// with backoff or fall back to polling. The stale c.subscriptions entry on
// affected connections is harmless — Broadcast routes through m.subscribers,
// which no longer has the channel, and unsubscribe tolerates missing keys.
func (m *ConnectionManager) dropBrokenChannel(triggering *Connection, channel string) {
	m.mu.Lock()
	orphans := make([]*Connection, 0, len(m.subscribers[channel]))
	for id := range m.subscribers[channel] {
		if id == triggering.ID {
			continue
		}
		if c, ok := m.connections[id]; ok {
			orphans = append(orphans, c)
		}
	}
	delete(m.subscribers, channel)
	m.mu.Unlock()

	for _, c := range orphans {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.ID, "channel", channel)
		m.writeJSON(c, map[string]string{
			"type":    "subscription.error",
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the connection from the channel; the last subscriber
// leaving triggers an UNLISTEN. The UNLISTEN goroutine re-checks the map
// first so a quick unsubscribe/resubscribe from a reconnecting client cannot
// drop a LISTEN the new subscription still needs.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.mu.Lock()
	last := false
	if subs, ok := m.subscribers[channel]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.subscribers, channel)
			last = true
		}
	}
	m.mu.Unlock()

	if last {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			go func() {
				m.mu.RLock()
				_, resubscribed := m.subscribers[channel]
				m.mu.RUnlock()
				if resubscribed {
					return
				}
				if err := l.Unsubscribe(context.Background(), channel); err != nil {
					slog.Error("UNLISTEN failed", "channel", channel, "error", err)
				}
			}()
		}
	}

	delete(c.subscriptions, channel)
}

// replay streams persisted events after sinceID to one client, injecting the
// DB row id as db_event_id (stored payloads don't carry it; the publisher
// only adds it to the NOTIFY copy).
func (m *ConnectionManager) replay(ctx context.Context, c *Connection, channel string, sinceID int) {
	if m.catchup == nil {
		return
	}

	// Fetch one extra row to detect overflow.
	events, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	overflow := len(events) > catchupLimit
	if overflow {
		events = events[:catchupLimit]
	}

	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.write(c, data); err != nil {
			slog.Warn("Catchup send failed", "connection_id", c.ID, "error", err)
			return
		}
	}

	if overflow {
		m.writeJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) track(c *Connection) {
	m.mu.Lock()
	m.connections[c.ID] = c
	m.mu.Unlock()
}

func (m *ConnectionManager) untrack(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) writeJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.write(c, data); err != nil {
		slog.Warn("WebSocket send failed", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) write(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
