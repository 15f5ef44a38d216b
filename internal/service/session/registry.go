package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is one user's pairing of current state and draft. Callers must
// hold mu while reading or mutating it; the registry hands out the same
// pointer to every event for the same user, and events for different users
// proceed independently.
type Session struct {
	mu sync.Mutex

	UserID         int64
	State          State
	Draft          Draft
	IsAdmin        bool
	PendingColorID *uuid.UUID // color being edited while in StateEditColor
}

// Lock serializes event handling for this session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset returns the session to the initial state and drops all transient
// data, including admin rights.
func (s *Session) Reset() {
	s.State = StateStart
	s.Draft.Clear()
	s.IsAdmin = false
	s.PendingColorID = nil
}

// Registry holds all live sessions, keyed by external user id.
// Sessions are created on first contact and live until process exit.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Get returns the session for the user, creating it in StateStart if the
// user has never been seen.
func (r *Registry) Get(userID int64) *Session {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[userID]; ok {
		return s
	}
	s = &Session{UserID: userID, State: StateStart}
	r.sessions[userID] = s
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
