// Package service implements the authentication core: credential checks,
// token issuing and revocation, and the session variant. Handlers call
// into it and translate its sentinel errors to HTTP status codes.
package service

import "errors"

// Closed set of failure kinds surfaced by AuthService. Login failures are
// deliberately undifferentiated so a caller cannot probe which usernames
// exist, and every token problem (malformed, forged, expired, revoked)
// collapses into ErrInvalidToken for the same reason.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)
