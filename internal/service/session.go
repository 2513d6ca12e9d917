package service

import (
	"sync"

	"github.com/google/uuid"
)

// Session owns the slot accumulator of one conversation. Turns of the
// same session are serialized through mu because merges are not safe
// concurrently; distinct sessions share nothing mutable.
type Session struct {
	ID  string
	mu  sync.Mutex
	acc *Accumulator
}

// SessionManager is the registry of live conversation sessions.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it when unknown. An empty id
// mints a fresh session with a new uuid.
func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	session, ok := m.sessions[id]
	if !ok {
		session = &Session{
			ID:  id,
			acc: NewAccumulator(),
		}
		m.sessions[id] = session
	}
	return session
}

// Reset clears the accumulated criteria of id. Unknown ids are a no-op.
func (m *SessionManager) Reset(id string) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.acc.Reset()
}
