package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenLedgerSaveAndValidate(t *testing.T) {
	t.Parallel()
	l := NewTokenLedger()

	l.Save("tok-1", 1)
	require.True(t, l.IsValid("tok-1", 1))

	// Exact token string and matching user id are both required.
	require.False(t, l.IsValid("tok-1", 2))
	require.False(t, l.IsValid("tok-other", 1))
}

func TestTokenLedgerExpiry(t *testing.T) {
	t.Parallel()
	l := NewTokenLedger()

	base := time.Now()
	l.now = func() time.Time { return base }
	l.Save("tok-1", 1)

	// Still valid exactly at the deadline, invalid one second after.
	l.now = func() time.Time { return base.Add(LedgerTTL) }
	require.True(t, l.IsValid("tok-1", 1))

	l.now = func() time.Time { return base.Add(LedgerTTL + time.Second) }
	require.False(t, l.IsValid("tok-1", 1))
}

func TestTokenLedgerInvalidateAllForUser(t *testing.T) {
	t.Parallel()
	l := NewTokenLedger()

	l.Save("u1-a", 1)
	l.Save("u1-b", 1)
	l.Save("u2-a", 2)

	l.InvalidateAllForUser(1)

	require.False(t, l.IsValid("u1-a", 1))
	require.False(t, l.IsValid("u1-b", 1))
	require.True(t, l.IsValid("u2-a", 2))
}
