package repository

import (
	"net/http"
	"sync"

	"portfolio-web/internal/session/domain"
)

// MemorySessionRepository is an in-memory SessionRepository for tests. It
// holds a single session the way one browser's cookie jar would.
type MemorySessionRepository struct {
	mu   sync.Mutex
	sess *domain.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{}
}

func (m *MemorySessionRepository) Set(_ http.ResponseWriter, sess *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = sess
}

func (m *MemorySessionRepository) Clear(_ http.ResponseWriter) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
}

func (m *MemorySessionRepository) Read(_ *http.Request) (*domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return nil, false
	}
	return m.sess, true
}
