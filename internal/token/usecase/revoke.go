package usecase

import (
	"context"
	"time"

	"auth-srv/internal/model"
	"auth-srv/internal/token"
)

// Revoke blacklists the presented token until its natural expiry. Only a
// token that still verifies can be revoked; anything else is rejected so the
// blacklist cannot be filled with garbage.
func (uc *implUseCase) Revoke(ctx context.Context, sc model.Scope, input token.RevokeInput) error {
	if input.Token == "" {
		return token.ErrTokenRequired
	}
	if !uc.blacklistCfg.Enabled || uc.redis == nil {
		return token.ErrBlacklistUnavailable
	}

	claims, err := uc.jwtManager.VerifyToken(input.Token)
	if err != nil {
		uc.l.Warnf(ctx, "token.usecase.Revoke: Rejected unverifiable token from user %s: %v", sc.UserID, err)
		return token.ErrInvalidToken
	}
	if claims.ID == "" {
		// No jti, nothing to key the blacklist entry on
		return token.ErrInvalidToken
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := uc.revoke(ctx, claims.ID, expiresAt); err != nil {
		return token.ErrBlacklistUnavailable
	}

	uc.l.Infof(ctx, "token.usecase.Revoke: Token %s revoked by user %s", claims.ID, sc.UserID)
	uc.record(ctx, model.AuthEventRevoked, claims.Subject, "")
	return nil
}
