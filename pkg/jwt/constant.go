package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for the HS256 secret key.
	MinSecretKeyLen = 32

	// DefaultTTL is the token lifetime used by GenerateToken when the
	// config does not set one.
	DefaultTTL = 8 * time.Hour
)
