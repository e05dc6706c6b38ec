package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// tokenDelimiter joins the three base64url segments of a compact token.
const tokenDelimiter = "."

// DecodeToken splits a compact token into its decoded header, claim set and
// signature. signingInput is the pre-decoding "header.payload" byte string
// the signature was computed over. Pure function, no side effects; the
// inverse of Manager.GenerateToken.
func DecodeToken(raw string) (header *Header, claims *Claims, signature []byte, signingInput string, err error) {
	parts := strings.Split(raw, tokenDelimiter)
	if len(parts) != 3 {
		return nil, nil, nil, "", fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}
	for i, part := range parts {
		if part == "" {
			return nil, nil, nil, "", fmt.Errorf("%w: segment %d is empty", ErrMalformedToken, i)
		}
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("%w: header segment is not base64url", ErrMalformedToken)
	}
	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("%w: payload segment is not base64url", ErrMalformedToken)
	}
	signature, err = base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("%w: signature segment is not base64url", ErrMalformedToken)
	}

	header = &Header{}
	if err := json.Unmarshal(headerBytes, header); err != nil {
		return nil, nil, nil, "", fmt.Errorf("%w: header is not valid JSON", ErrMalformedToken)
	}
	claims = &Claims{}
	if err := json.Unmarshal(payloadBytes, claims); err != nil {
		return nil, nil, nil, "", fmt.Errorf("%w: payload is not valid JSON", ErrMalformedToken)
	}

	signingInput = parts[0] + tokenDelimiter + parts[1]
	return header, claims, signature, signingInput, nil
}
