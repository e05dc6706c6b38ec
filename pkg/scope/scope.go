package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"auth-srv/internal/model"
)

// Payload is the claim set extracted from a verified token.
type Payload struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username,omitempty"`
	Role     string   `json:"role,omitempty"`
	Roles    []string `json:"roles,omitempty"`

	Subject   string `json:"subject"`
	Issuer    string `json:"issuer,omitempty"`
	Id        string `json:"id,omitempty"`
	IssuedAt  int64  `json:"issued_at,omitempty"`
	ExpiresAt int64  `json:"expires_at"`
}

// Manager verifies tokens and creates them for round-trip testing.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type payloadKey struct{}
type scopeKey struct{}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
		Roles:    payload.Roles,
	}
}

// SetPayloadToContext binds the payload to the request context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext returns the payload bound to ctx, if any.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

// SetScopeToContext binds the scope to the request context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope bound to ctx. Returns the zero
// scope when no credential was presented on the request.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// CreateScopeHeader serializes a scope for service-to-service propagation.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader is the inverse of CreateScopeHeader.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}
	return sc, nil
}
