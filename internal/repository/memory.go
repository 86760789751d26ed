package store

import (
	"sync"

	"github.com/onair-app/onair-server/internal/domain"
)

// MemorySessionStore is the in-process session table.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

var _ SessionStore = (*MemorySessionStore)(nil)

func (m *MemorySessionStore) Put(session *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = session
}

func (m *MemorySessionStore) Get(sessionID string) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	return s, ok
}

func (m *MemorySessionStore) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
