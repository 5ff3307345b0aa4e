package repository

import (
	"testing"

	"github.com/lightwind/auth-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateGetDestroy(t *testing.T) {
	t.Parallel()
	s := NewSessionStore()
	u := model.User{ID: 1, Username: "alice"}

	sess, err := s.Create(u)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, uint64(1), sess.UserID)
	require.Equal(t, "alice", sess.Username)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	require.Equal(t, sess, got)

	s.Destroy(sess.ID)
	_, ok = s.Get(sess.ID)
	require.False(t, ok)

	// Destroying again is a no-op.
	s.Destroy(sess.ID)
}

func TestSessionStoreSingleSessionPerUser(t *testing.T) {
	t.Parallel()
	s := NewSessionStore()
	u := model.User{ID: 7, Username: "bob"}

	first, err := s.Create(u)
	require.NoError(t, err)

	second, err := s.Create(u)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID, "session id must rotate on login")

	_, ok := s.Get(first.ID)
	require.False(t, ok, "previous session must be invalidated")

	_, ok = s.Get(second.ID)
	require.True(t, ok)
}

func TestSessionStoreIndependentUsers(t *testing.T) {
	t.Parallel()
	s := NewSessionStore()

	a, err := s.Create(model.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	b, err := s.Create(model.User{ID: 2, Username: "bob"})
	require.NoError(t, err)

	s.Destroy(a.ID)
	_, ok := s.Get(b.ID)
	require.True(t, ok)
}
