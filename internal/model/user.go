package model

import "time"

// User represents an application account held in the in-memory credential
// store. The Verifier field stores the password in its encoded form
// (a bcrypt hash, or the raw secret under the legacy plaintext policy) and
// must never leave the service through a handler response.
//
// Fields:
//  ID       – numeric identifier, assigned from an atomic counter at creation.
//  Username – unique, case-sensitive key; immutable once registered.
//  Email    – optional contact address supplied at registration.
//  Verifier – opaque encoded password; interpreted by the active policy.
type User struct {
	ID       uint64
	Username string
	Email    string
	Verifier string
}

// RefreshTokenRecord is a refresh-token ledger entry. The signed token
// string itself is the key; ExpiresAt is the ledger's own revocation
// deadline and is independent of the exp claim embedded in the token.
type RefreshTokenRecord struct {
	Token     string
	UserID    uint64
	ExpiresAt time.Time
}

// Session is a server-side login handle used by the session deployment
// variant. The ID is an opaque random string handed to the client as a
// cookie; it is rotated on every login so a fixated id never survives a
// new authentication.
type Session struct {
	ID        string
	UserID    uint64
	Username  string
	CreatedAt time.Time
}
