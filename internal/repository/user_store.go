package repository

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/lightwind/auth-service/internal/model"
)

var ErrUserExists = errors.New("username already exists")

// UserStore keeps registered users in memory, keyed by username. Lookups
// are case-sensitive and usernames are immutable once created. Identifiers
// come from a dedicated atomic counter so two concurrent registrations can
// never be assigned the same id.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]model.User
	nextID atomic.Uint64
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User)}
}

// Create inserts a new user with the given encoded verifier and returns it.
// Returns ErrUserExists when the username is already taken; the counter is
// only advanced on success, so ids stay dense starting at 1.
func (s *UserStore) Create(username, email, verifier string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return model.User{}, ErrUserExists
	}
	u := model.User{
		ID:       s.nextID.Add(1),
		Username: username,
		Email:    email,
		Verifier: verifier,
	}
	s.users[username] = u
	return u, nil
}

// FindByUsername returns the stored user and whether it exists.
func (s *UserStore) FindByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}

// Exists reports whether a user with the exact username is registered.
func (s *UserStore) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok
}
