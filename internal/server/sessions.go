package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/draft"
)

// Session is one in-progress resume editing session. Drafts live only here,
// in memory; a session disappears on successful submission or explicit delete.
type Session struct {
	ID        string
	Store     *draft.Store
	CreatedAt time.Time

	// mu serializes handler access to the Store, which is single-writer
	// by design.
	mu sync.Mutex
}

// Registry holds the active sessions keyed by id.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create starts a new session with a fresh draft.
func (r *Registry) Create() *Session {
	session := &Session{
		ID:        uuid.New().String(),
		Store:     draft.NewStore(),
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return session, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Count returns the number of active sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
