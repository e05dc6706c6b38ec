package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestValidateClaims(t *testing.T) {
	now := testClock()
	date := func(tm time.Time) *jwtlib.NumericDate { return jwtlib.NewNumericDate(tm) }

	tests := []struct {
		name    string
		claims  *Claims
		wantErr error
	}{
		{
			name: "valid claims",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now.Add(time.Hour)),
				IssuedAt:  date(now.Add(-time.Minute)),
			}},
			wantErr: nil,
		},
		{
			name:    "nil claims",
			claims:  nil,
			wantErr: ErrMissingSubject,
		},
		{
			name: "missing subject",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				ExpiresAt: date(now.Add(time.Hour)),
			}},
			wantErr: ErrMissingSubject,
		},
		{
			name: "whitespace subject",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "   ",
				ExpiresAt: date(now.Add(time.Hour)),
			}},
			wantErr: ErrMissingSubject,
		},
		{
			name: "missing subject wins over expired",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				ExpiresAt: date(now.Add(-time.Hour)),
			}},
			wantErr: ErrMissingSubject,
		},
		{
			name: "expired in the past",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now.Add(-time.Second)),
			}},
			wantErr: ErrExpired,
		},
		{
			name: "expiry equal to now is expired",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now),
			}},
			wantErr: ErrExpired,
		},
		{
			name: "missing exp fails closed",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject: "alice",
			}},
			wantErr: ErrExpired,
		},
		{
			name: "not yet valid",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now.Add(2 * time.Hour)),
				NotBefore: date(now.Add(time.Hour)),
			}},
			wantErr: ErrNotYetValid,
		},
		{
			name: "nbf equal to now is valid",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now.Add(time.Hour)),
				NotBefore: date(now),
			}},
			wantErr: nil,
		},
		{
			name: "iat after exp is malformed",
			claims: &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: date(now.Add(time.Hour)),
				IssuedAt:  date(now.Add(2 * time.Hour)),
			}},
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClaims(tt.claims, now)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateClaims failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
