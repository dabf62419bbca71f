package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trainboard/lib-secrets-go/internal/testlogger"
)

type countingReloader struct {
	calls atomic.Int32
	err   error
}

func (r *countingReloader) Reload(ctx context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestManager_ReloadsPeriodically(t *testing.T) {
	reloader := &countingReloader{}
	logger := testlogger.New()

	m := New(reloader, 10*time.Millisecond, logger)
	m.Start(context.Background())
	// A second Start must not spawn another loop.
	m.Start(context.Background())

	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	m.Shutdown()

	attempted, succeeded := m.LastReload()
	assert.False(t, attempted.IsZero())
	assert.False(t, succeeded.IsZero())
	assert.True(t, logger.Contains(testlogger.Debug, "Secrets reload successful"))
	assert.True(t, logger.Contains(testlogger.Info, "shutdown complete"))

	stopped := reloader.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, reloader.calls.Load())
}

func TestManager_FailedReloadKeepsGoing(t *testing.T) {
	reloader := &countingReloader{err: errors.New("source unavailable")}
	logger := testlogger.New()

	m := New(reloader, 10*time.Millisecond, logger)
	m.Start(context.Background())

	assert.Eventually(t, func() bool { return reloader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	m.Shutdown()

	attempted, succeeded := m.LastReload()
	assert.False(t, attempted.IsZero())
	assert.True(t, succeeded.IsZero())
	assert.True(t, logger.Contains(testlogger.Error, "keeping previous values", "source unavailable"))
}

func TestManager_DisabledInterval(t *testing.T) {
	reloader := &countingReloader{}

	m := New(reloader, 0, testlogger.New())
	m.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	m.Shutdown()

	assert.Zero(t, reloader.calls.Load())
}

func TestManager_StopsWithParentContext(t *testing.T) {
	reloader := &countingReloader{}
	logger := testlogger.New()

	ctx, cancel := context.WithCancel(context.Background())

	m := New(reloader, 10*time.Millisecond, logger)
	m.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		return logger.Contains(testlogger.Info, "Background secrets reload stopped")
	}, time.Second, 5*time.Millisecond)

	m.Shutdown()
}

func TestManager_ShutdownWithoutStart(t *testing.T) {
	m := New(&countingReloader{}, time.Second, testlogger.New())

	assert.NotPanics(t, m.Shutdown)
}
