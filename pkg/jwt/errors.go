package jwt

import "errors"

// Verification errors. The interceptor collapses all of them into one
// generic 401; the distinctions exist for logging and the audit trail.
var (
	// ErrMalformedToken - the compact form or its JSON segments are broken.
	ErrMalformedToken = errors.New("jwt: malformed token")

	// ErrUnsupportedAlgorithm - the header names an algorithm the verifier
	// does not implement. Covers "none" and asymmetric algs.
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported signing algorithm")

	// ErrSignatureMismatch - recomputed signature differs from the supplied one.
	ErrSignatureMismatch = errors.New("jwt: signature mismatch")

	// ErrMissingSubject - subject claim absent or empty.
	ErrMissingSubject = errors.New("jwt: missing subject claim")

	// ErrExpired - expiry reached, or the required exp claim is absent.
	ErrExpired = errors.New("jwt: token expired")

	// ErrNotYetValid - nbf claim lies in the future.
	ErrNotYetValid = errors.New("jwt: token not yet valid")
)
