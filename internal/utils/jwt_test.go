package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key"

func TestNewTokenAndVerify(t *testing.T) {
	t.Parallel()

	tok, err := NewToken(testSecret, "alice", 42, 3600)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyToken(testSecret, tok)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, uint64(42), claims.UserID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	require.Equal(t, int64(3600), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix())
}

func TestVerifyTokenMalformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken(testSecret, "not-a-token")
	require.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestVerifyTokenBadSignature(t *testing.T) {
	t.Parallel()

	tok, err := NewToken("other-secret", "alice", 1, 3600)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Parallel()

	tok, err := NewToken(testSecret, "alice", 1, -1)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestExtractToleratesExpiredButNotForged(t *testing.T) {
	t.Parallel()

	expired, err := NewToken(testSecret, "alice", 42, -1)
	require.NoError(t, err)

	// Logout relies on this: an expired token still yields its identity.
	name, err := ExtractUsername(testSecret, expired)
	require.NoError(t, err)
	require.Equal(t, "alice", name)

	id, err := ExtractUserID(testSecret, expired)
	require.NoError(t, err)
	require.Equal(t, uint64(42), id)

	// A wrong signature is rejected even though claims parse fine.
	forged, err := NewToken("other-secret", "alice", 42, 3600)
	require.NoError(t, err)
	_, err = ExtractUsername(testSecret, forged)
	require.Error(t, err)
	_, err = ExtractUserID(testSecret, forged)
	require.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	tok, err := NewToken(testSecret, "alice", 1, 3600)
	require.NoError(t, err)

	require.True(t, ValidateToken(testSecret, tok, "alice"))
	require.False(t, ValidateToken(testSecret, tok, "bob"))

	expired, err := NewToken(testSecret, "alice", 1, -1)
	require.NoError(t, err)
	require.False(t, ValidateToken(testSecret, expired, "alice"))
}

func TestRandomHex(t *testing.T) {
	t.Parallel()

	a, err := RandomHex(32)
	require.NoError(t, err)
	require.Len(t, a, 64)

	b, err := RandomHex(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
