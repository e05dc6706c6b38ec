package jwt

import (
	"fmt"
	"time"

	"auth-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken generates a new JWT token with the HS256 algorithm.
// Used by issuers and by tests as the inverse of DecodeToken.
func (m *managerImpl) GenerateToken(userID, username string, roles []string) (string, error) {
	now := m.now()

	claims := Claims{
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken runs the full pipeline: decode, verify signature, validate
// claims at the manager's clock instant.
func (m *managerImpl) VerifyToken(tokenString string) (*Claims, error) {
	return m.verifyTokenAt(tokenString, m.now())
}

func (m *managerImpl) verifyTokenAt(tokenString string, now time.Time) (*Claims, error) {
	header, claims, signature, signingInput, err := DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	if err := VerifySignature(header, signingInput, signature, m.secretKey); err != nil {
		return nil, err
	}

	if err := ValidateClaims(claims, now); err != nil {
		return nil, err
	}

	return claims, nil
}

// Verify implements scope.Manager - verifies an HS256 token and returns
// a scope.Payload for context binding.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.VerifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	p := scope.Payload{
		UserID:   claims.Subject,
		Username: claims.Username,
		Roles:    claims.Roles,
		Subject:  claims.Subject,
		Issuer:   claims.Issuer,
		Id:       claims.ID,
	}
	if len(claims.Roles) > 0 {
		p.Role = claims.Roles[0]
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}

// CreateToken implements scope.Manager.
func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return m.GenerateToken(userID, payload.Username, payload.Roles)
}
