package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

// connCmd is a LISTEN/UNLISTEN statement routed through the receive loop,
// which is the sole goroutine allowed to touch the pgx connection.
type connCmd struct {
	sql    string
	result chan error
}

// NotifyListener holds a dedicated PostgreSQL connection in LISTEN mode and
// forwards every notification to the local ConnectionManager. Channels are
// added and removed dynamically as WebSocket clients subscribe.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager
	logger     *slog.Logger

	conn   *pgx.Conn
	connMu sync.Mutex

	active   map[string]bool
	activeMu sync.RWMutex

	// cmds serializes LISTEN/UNLISTEN through the receive loop. Issuing Exec
	// concurrently with WaitForNotification trips pgx's "conn busy" guard.
	cmds    chan connCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates a listener for the given connection string. The
// connection is not opened until Start.
func NewNotifyListener(connString string, manager *ConnectionManager, logger *slog.Logger) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		logger:     logger.With("component", "notify_listener"),
		active:     make(map[string]bool),
		cmds:       make(chan connCmd, 16),
	}
}

// Start opens the dedicated LISTEN connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	l.logger.Info("notify listener started")
	return nil
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection. Closing first would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// Subscribe issues LISTEN for a channel. No-op when already listening.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	listening := l.active[channel]
	l.activeMu.RUnlock()
	if listening {
		return nil
	}

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	if err := l.execSerialized(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	l.logger.Debug("subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel. No-op when not listening.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	listening := l.active[channel]
	l.activeMu.RUnlock()
	if !listening || !l.running.Load() {
		return nil
	}

	if err := l.execSerialized(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// isListening reports whether LISTEN is active for a channel. Tests poll
// this instead of sleeping.
func (l *NotifyListener) isListening(channel string) bool {
	l.activeMu.RLock()
	defer l.activeMu.RUnlock()
	return l.active[channel]
}

// execSerialized hands a statement to the receive loop and waits for the
// result.
func (l *NotifyListener) execSerialized(ctx context.Context, sql string) error {
	cmd := connCmd{sql: sql, result: make(chan error, 1)}

	select {
	case l.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop waits for notifications and dispatches them, interleaving
// pending LISTEN/UNLISTEN commands between waits.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short wait so queued commands get a turn regularly.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			l.logger.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCmds executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the connection with exponential backoff and
// re-issues LISTEN for every active channel.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 0 // retry until cancelled

	conn, err := backoff.RetryWithData(func() (*pgx.Conn, error) {
		c, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			l.logger.Error("LISTEN reconnect failed", "error", err)
			return nil, err
		}
		return c, nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return // context cancelled
	}
	l.conn = conn

	l.activeMu.RLock()
	for ch := range l.active {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			l.logger.Error("re-LISTEN failed", "channel", ch, "error", err)
		}
	}
	l.activeMu.RUnlock()

	l.logger.Info("notify listener reconnected")
}
