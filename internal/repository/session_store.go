package repository

import (
	"sync"
	"time"

	"github.com/lightwind/auth-service/internal/model"
	"github.com/lightwind/auth-service/internal/utils"
)

// SessionStore holds server-side login sessions for the session deployment
// variant. At most one session per user is live at any time: a new login
// destroys the previous session and mints a fresh random id, so an id
// captured before authentication never stays valid afterwards.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	byUser   map[uint64]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]model.Session),
		byUser:   make(map[uint64]string),
	}
}

// Create establishes a session for the user and returns it. Any existing
// session for the same user is invalidated first.
func (s *SessionStore) Create(u model.User) (model.Session, error) {
	id, err := utils.RandomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return model.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byUser[u.ID]; ok {
		delete(s.sessions, prev)
	}
	sess := model.Session{
		ID:        id,
		UserID:    u.ID,
		Username:  u.Username,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[id] = sess
	s.byUser[u.ID] = id
	return sess, nil
}

// Get returns the session for the given id and whether it exists.
func (s *SessionStore) Get(id string) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Destroy removes the session with the given id. Unknown ids are ignored.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		delete(s.byUser, sess.UserID)
		delete(s.sessions, id)
	}
}
