package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// VerifySignature recomputes the signature over signingInput with the
// algorithm named in the header and compares it against signature.
// Only the HMAC family is accepted; "none", unknown and asymmetric
// algorithms fail closed with ErrUnsupportedAlgorithm. The comparison is
// constant-time (hmac.Equal inside SigningMethodHMAC.Verify). Side-effect-free.
func VerifySignature(header *Header, signingInput string, signature []byte, key []byte) error {
	if header == nil || header.Alg == "" {
		return fmt.Errorf("%w: header names no algorithm", ErrUnsupportedAlgorithm)
	}

	method, ok := jwt.GetSigningMethod(header.Alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, header.Alg)
	}

	if err := method.Verify(signingInput, signature, key); err != nil {
		return ErrSignatureMismatch
	}
	return nil
}
