package shutdown

import (
	"strings"
	"sync"

	"github.com/trainboard/lib-secrets-go/model"
)

// PanicPrefix starts the panic value of the default handler.
const PanicPrefix = "SECRETS VALIDATION FAILED: "

// Handler is called with a summary of why the secrets are unusable
type Handler func(reason string)

// DefaultHandler panics with the reason, leaving recovery to the application.
func DefaultHandler(reason string) {
	panic(PanicPrefix + reason)
}

// Manager decides what happens when startup validation fails
type Manager struct {
	mu      sync.Mutex
	handler Handler
	reasons []string
}

// New creates a new termination manager with the default handler
func New() *Manager {
	return &Manager{
		handler: DefaultHandler,
	}
}

// SetHandler replaces the termination handler. A nil handler is ignored.
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.handler = handler
}

// Terminate records reason and invokes the handler outside the lock, so a
// panicking handler leaves the manager usable.
func (m *Manager) Terminate(reason string) {
	m.mu.Lock()
	m.reasons = append(m.reasons, reason)
	handler := m.handler
	m.mu.Unlock()

	handler(reason)
}

// Reasons returns every reason passed to Terminate, oldest first
func (m *Manager) Reasons() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.reasons...)
}

// Reason summarizes issues as "field=CODE" pairs. Messages are left out so the
// summary stays short enough for a panic value or a log line.
func Reason(issues []model.Issue) string {
	pairs := make([]string, 0, len(issues))
	for _, issue := range issues {
		pairs = append(pairs, issue.Field+"="+issue.Code)
	}

	return strings.Join(pairs, ", ")
}
