package jwt

import (
	"fmt"
	"strings"
	"time"
)

// ValidateClaims checks structural and time-based claims. The validation
// instant is always supplied by the caller so the check is deterministic.
//
// Rules:
//   - subject must be present and non-empty
//   - exp is required and must lie strictly after now
//   - iat, when present, must not exceed exp
//   - nbf, when present, must not lie after now
func ValidateClaims(claims *Claims, now time.Time) error {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return ErrMissingSubject
	}

	if claims.ExpiresAt == nil {
		return fmt.Errorf("%w: exp claim is required", ErrExpired)
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return ErrExpired
	}

	if claims.IssuedAt != nil && claims.IssuedAt.Time.After(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w: iat is after exp", ErrMalformedToken)
	}

	if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
