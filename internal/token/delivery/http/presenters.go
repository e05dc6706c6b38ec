package http

import (
	"auth-srv/internal/model"
	"auth-srv/internal/token"
)

type introspectReq struct {
	Token string `json:"token"`
}

func (r introspectReq) toInput() token.IntrospectInput {
	return token.IntrospectInput{Token: r.Token}
}

// introspectResp follows the RFC 7662 response shape.
type introspectResp struct {
	Active    bool     `json:"active"`
	Subject   string   `json:"sub,omitempty"`
	Username  string   `json:"username,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Issuer    string   `json:"iss,omitempty"`
	TokenID   string   `json:"jti,omitempty"`
	IssuedAt  int64    `json:"iat,omitempty"`
	ExpiresAt int64    `json:"exp,omitempty"`
}

func (h *handler) newIntrospectResp(o token.IntrospectOutput) introspectResp {
	return introspectResp{
		Active:    o.Active,
		Subject:   o.Subject,
		Username:  o.Username,
		Roles:     o.Roles,
		Issuer:    o.Issuer,
		TokenID:   o.TokenID,
		IssuedAt:  o.IssuedAt,
		ExpiresAt: o.ExpiresAt,
	}
}

type revokeReq struct {
	Token string `json:"token"`
}

func (r revokeReq) toInput() token.RevokeInput {
	return token.RevokeInput{Token: r.Token}
}

type meResp struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username,omitempty"`
	Role     string   `json:"role,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

func (h *handler) newMeResp(sc model.Scope) meResp {
	return meResp{
		UserID:   sc.UserID,
		Username: sc.Username,
		Role:     sc.Role,
		Roles:    sc.Roles,
	}
}
