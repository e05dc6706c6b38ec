package token

import (
	"context"

	"auth-srv/internal/model"
)

// UseCase covers token introspection and revocation for callers that cannot
// verify tokens locally.
type UseCase interface {
	// Introspect reports whether a token is currently active together with
	// its claims. An invalid or revoked token yields active=false, not an
	// error, so callers cannot probe for the failure stage.
	Introspect(ctx context.Context, input IntrospectInput) (IntrospectOutput, error)

	// Revoke blacklists the presented token until its natural expiry.
	Revoke(ctx context.Context, sc model.Scope, input RevokeInput) error
}
