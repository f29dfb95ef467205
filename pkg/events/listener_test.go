package events

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=trendscope", manager, slog.Default())

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=trendscope", listener.connString)
	assert.Equal(t, manager, listener.manager)
	assert.Empty(t, listener.active)
}

func TestNotifyListener_BeforeStart(t *testing.T) {
	// Before Start the listener has no connection; Subscribe must fail
	// loudly so the manager never confirms a dead subscription, while
	// Unsubscribe stays a no-op.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=trendscope", manager, slog.Default())

	t.Run("subscribe returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "execution:abc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
		assert.False(t, listener.isListening("execution:abc"))
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "execution:abc")
		assert.NoError(t, err)
	})
}
