package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/storage"
)

func TestJanitorStartStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	sessions := storage.NewSessionStorage()
	sessions.Store(1, book.NewSession(nil))

	// cron rounds sub-second intervals up to one second.
	j := NewSessionJanitor(sessions, -time.Second, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Start(ctx) }()

	require.Eventually(t, func() bool { return sessions.Len() == 0 }, 3*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
