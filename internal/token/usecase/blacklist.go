package usecase

import (
	"context"
	"time"
)

// blacklistKey builds the Redis key for a revoked token id.
func (uc *implUseCase) blacklistKey(tokenID string) string {
	prefix := uc.blacklistCfg.KeyPrefix
	if prefix == "" {
		prefix = "blacklist:"
	}
	return prefix + tokenID
}

// isRevoked reports whether the token id is on the blacklist. Tokens without
// an id cannot be revoked individually and are never considered revoked.
// Blacklist lookups fail open when the feature is disabled and fail closed
// when Redis errors, since a revoked token must never slip through.
func (uc *implUseCase) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !uc.blacklistCfg.Enabled || uc.redis == nil || tokenID == "" {
		return false, nil
	}

	revoked, err := uc.redis.Exists(ctx, uc.blacklistKey(tokenID))
	if err != nil {
		uc.l.Errorf(ctx, "token.usecase.isRevoked: Blacklist lookup failed: %v", err)
		return true, err
	}
	return revoked, nil
}

// revoke puts the token id on the blacklist until expiresAt. An entry that
// outlives the token is pure waste, so the TTL tracks the token's own expiry.
func (uc *implUseCase) revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, nothing to blacklist
		return nil
	}

	if err := uc.redis.Set(ctx, uc.blacklistKey(tokenID), "1", ttl); err != nil {
		uc.l.Errorf(ctx, "token.usecase.revoke: Blacklist write failed: %v", err)
		return err
	}
	return nil
}
