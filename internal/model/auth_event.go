package model

import "time"

// Auth event types recorded by the audit trail.
const (
	AuthEventAccepted    = "ACCEPTED"
	AuthEventRejected    = "REJECTED"
	AuthEventIntrospect  = "INTROSPECTED"
	AuthEventRevoked     = "REVOKED"
	AuthEventPassThrough = "PASS_THROUGH"
)

// AuthEvent is one entry of the authentication audit trail. The Reason
// field carries the internal failure distinction that is never surfaced
// to HTTP callers.
type AuthEvent struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	Subject   string    `json:"subject,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Path      string    `json:"path,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
