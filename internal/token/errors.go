package token

import "errors"

// Domain errors
var (
	// ErrTokenRequired - request body carried no token
	ErrTokenRequired = errors.New("token: token is required")

	// ErrInvalidToken - token failed verification, cannot be revoked
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrBlacklistUnavailable - revocation store is down
	ErrBlacklistUnavailable = errors.New("token: blacklist unavailable")
)
