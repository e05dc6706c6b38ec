package usecase

import (
	"context"

	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/internal/token"
)

// Introspect verifies the token and reports its claims. Verification
// failures and revoked tokens both yield active=false so the response shape
// leaks nothing about why a token is dead.
func (uc *implUseCase) Introspect(ctx context.Context, input token.IntrospectInput) (token.IntrospectOutput, error) {
	if input.Token == "" {
		return token.IntrospectOutput{}, token.ErrTokenRequired
	}

	claims, err := uc.jwtManager.VerifyToken(input.Token)
	if err != nil {
		uc.record(ctx, model.AuthEventIntrospect, "", err.Error())
		return token.IntrospectOutput{Active: false}, nil
	}

	revoked, err := uc.isRevoked(ctx, claims.ID)
	if err != nil {
		// Fails closed, but the trail must say what actually happened
		uc.record(ctx, model.AuthEventIntrospect, claims.Subject, "blacklist lookup failed")
		return token.IntrospectOutput{Active: false}, nil
	}
	if revoked {
		uc.record(ctx, model.AuthEventIntrospect, claims.Subject, "token revoked")
		return token.IntrospectOutput{Active: false}, nil
	}

	out := token.IntrospectOutput{
		Active:   true,
		Subject:  claims.Subject,
		Username: claims.Username,
		Roles:    claims.Roles,
		Issuer:   claims.Issuer,
		TokenID:  claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}

	uc.record(ctx, model.AuthEventIntrospect, claims.Subject, "")
	return out, nil
}

func (uc *implUseCase) record(ctx context.Context, eventType, subject, reason string) {
	if uc.auditUC == nil {
		return
	}
	uc.auditUC.Record(ctx, audit.RecordInput{
		EventType: eventType,
		Subject:   subject,
		Reason:    reason,
	})
}
