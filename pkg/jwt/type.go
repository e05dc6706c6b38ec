package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration. The secret always arrives from
// the external configuration loader, never from a literal in code.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration

	// Clock supplies the validation instant. Defaults to time.Now.
	// Tests inject a fixed clock here for deterministic expiry checks.
	Clock func() time.Time
}

// Header is the decoded first segment of a compact token.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ,omitempty"`
}

// Claims represents the JWT claims structure.
type Claims struct {
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
	now       func() time.Time
}
