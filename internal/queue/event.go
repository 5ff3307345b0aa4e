// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into an audit log.
package queue

// Event types published on the auth.events queue.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventUserLoggedOut  = "user.logged_out"
)

// AuthEvent is published on every significant account action so downstream
// consumers can audit authentication activity without querying the service.
// It never carries secrets or token material.
type AuthEvent struct {
	Type     string `json:"type"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	At       string `json:"at"` // RFC 3339 UTC timestamp
}
