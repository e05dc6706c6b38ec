package model

// Scope is the per-request authorization context derived from a verified
// token. It is owned by the request that created it and never shared.
type Scope struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username,omitempty"`
	Role     string   `json:"role,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}
