package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserStoreCreateAndLookup(t *testing.T) {
	t.Parallel()
	s := NewUserStore()

	u, err := s.Create("alice", "alice@example.com", "verifier-1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), u.ID)
	require.True(t, s.Exists("alice"))

	got, ok := s.FindByUsername("alice")
	require.True(t, ok)
	require.Equal(t, u, got)

	_, ok = s.FindByUsername("bob")
	require.False(t, ok)
	require.False(t, s.Exists("bob"))
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	t.Parallel()
	s := NewUserStore()

	_, err := s.Create("alice", "", "v1")
	require.NoError(t, err)

	_, err = s.Create("alice", "", "v2")
	require.ErrorIs(t, err, ErrUserExists)

	// Usernames are case-sensitive: a different casing is a different user.
	u, err := s.Create("Alice", "", "v3")
	require.NoError(t, err)
	require.Equal(t, uint64(2), u.ID)
}

func TestUserStoreConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()
	s := NewUserStore()

	const n = 64
	var wg sync.WaitGroup
	ids := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := s.Create(fmt.Sprintf("user-%d", i), "", "v")
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
}
