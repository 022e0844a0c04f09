package auth

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore holds the identity bound to each live session. Exactly one
// identity is current per session; the lifecycle is explicit: created on
// login or registration, replaced on role switch, cleared on logout.
// Nothing survives a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Identity
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Identity)}
}

// Create opens a new session for the identity and returns its id.
func (s *SessionStore) Create(ident *Identity) string {
	id := uuid.NewString()
	s.SetIdentity(id, ident)
	return id
}

// SetIdentity is the only mutation entry point for a session's identity.
// Passing nil clears the session (logout).
func (s *SessionStore) SetIdentity(sessionID string, ident *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ident == nil {
		delete(s.sessions, sessionID)
		return
	}
	s.sessions[sessionID] = ident
}

// Identity returns the identity bound to the session, if it is live.
func (s *SessionStore) Identity(sessionID string) (*Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ident, ok := s.sessions[sessionID]
	return ident, ok
}
