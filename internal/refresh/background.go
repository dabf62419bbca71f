package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Reloader re-reads the secrets source
type Reloader interface {
	Reload(ctx context.Context) error
}

// Manager handles background reload of secrets
type Manager struct {
	reloadInterval     time.Duration
	started            bool
	mu                 sync.Mutex
	cancel             context.CancelFunc
	done               chan struct{}
	reloader           Reloader
	logger             log.Logger
	lastAttemptedLoad  time.Time
	lastSuccessfulLoad time.Time
}

// New creates a new background reload manager
func New(reloader Reloader, reloadInterval time.Duration, logger log.Logger) *Manager {
	return &Manager{
		reloader:       reloader,
		reloadInterval: reloadInterval,
		logger:         logger,
	}
}

// Start begins the background reload process. A non-positive interval
// disables reloading.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started || m.reloadInterval <= 0 {
		m.mu.Unlock()
		return
	}

	reloadCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.started = true
	done := make(chan struct{})
	m.done = done
	m.mu.Unlock()

	ticker := time.NewTicker(m.reloadInterval)

	go func() {
		defer close(done)

		m.logger.Info("Starting background secrets reload")

		for {
			select {
			case <-reloadCtx.Done():
				ticker.Stop()
				m.logger.Info("Background secrets reload stopped")

				return
			case <-ticker.C:
				m.attemptReload(reloadCtx)
			}
		}
	}()
}

// Shutdown stops the background reload process and waits for it to exit
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}

	m.cancel()
	m.cancel = nil
	m.started = false
	done := m.done
	m.mu.Unlock()

	<-done
	m.logger.Info("Background secrets reload shutdown complete")
}

// LastReload returns when a reload was last attempted and last succeeded
func (m *Manager) LastReload() (attempted, succeeded time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lastAttemptedLoad, m.lastSuccessfulLoad
}

func (m *Manager) attemptReload(ctx context.Context) {
	m.mu.Lock()
	m.lastAttemptedLoad = time.Now()
	m.mu.Unlock()

	if err := m.reloader.Reload(ctx); err != nil {
		m.logger.Errorf("Secrets reload failed, keeping previous values: %v", err)
		return
	}

	m.mu.Lock()
	m.lastSuccessfulLoad = time.Now()
	m.mu.Unlock()

	m.logger.Debug("Secrets reload successful")
}
