package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("rejects short secret", func(t *testing.T) {
		_, err := New(Config{SecretKey: "too-short"})
		if err == nil {
			t.Fatal("New should reject secrets shorter than MinSecretKeyLen")
		}
	})

	t.Run("accepts minimum length secret", func(t *testing.T) {
		if _, err := New(Config{SecretKey: testSecret}); err != nil {
			t.Fatalf("New failed: %v", err)
		}
	})
}

func TestManagerRoundTrip(t *testing.T) {
	m := newTestManager(t)

	raw, err := m.GenerateToken("user-42", "alice", []string{"ADMIN", "VIEWER"})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Run("VerifyToken returns the original claims", func(t *testing.T) {
		claims, err := m.VerifyToken(raw)
		if err != nil {
			t.Fatalf("VerifyToken failed: %v", err)
		}
		if claims.Subject != "user-42" {
			t.Errorf("Subject mismatch: got %s, want user-42", claims.Subject)
		}
		if len(claims.Roles) != 2 || claims.Roles[0] != "ADMIN" {
			t.Errorf("Roles mismatch: got %v", claims.Roles)
		}
		if claims.ID == "" {
			t.Error("jti should be set")
		}
	})

	t.Run("Verify returns a scope payload", func(t *testing.T) {
		p, err := m.Verify(raw)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if p.UserID != "user-42" || p.Subject != "user-42" {
			t.Errorf("payload subject mismatch: %+v", p)
		}
		if p.Role != "ADMIN" {
			t.Errorf("Role mismatch: got %s, want ADMIN", p.Role)
		}
		if p.ExpiresAt != testClock().Add(time.Hour).Unix() {
			t.Errorf("ExpiresAt mismatch: got %d", p.ExpiresAt)
		}
	})

	t.Run("expired after clock advances past ttl", func(t *testing.T) {
		late, err := New(Config{
			SecretKey: testSecret,
			TTL:       time.Hour,
			Clock:     func() time.Time { return testClock().Add(2 * time.Hour) },
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if _, err := late.VerifyToken(raw); !errors.Is(err, ErrExpired) {
			t.Errorf("got %v, want ErrExpired", err)
		}
	})

	t.Run("rejected with a different secret", func(t *testing.T) {
		other, err := New(Config{
			SecretKey: "another-secret-key-32-bytes-long",
			Clock:     testClock,
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		if _, err := other.VerifyToken(raw); !errors.Is(err, ErrSignatureMismatch) {
			t.Errorf("got %v, want ErrSignatureMismatch", err)
		}
	})
}

// Fixed token shaped like the documented verification scenario: an HS256
// header, a far-future expiry, subject alice, validated at a frozen instant.
func TestManagerFixedScenario(t *testing.T) {
	m := newTestManager(t)

	raw := buildToken(t, `{"alg":"HS256","typ":"JWT"}`, `{"sub":"alice","exp":9999999999}`, []byte(testSecret))

	claims, err := m.VerifyToken(raw)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject mismatch: got %s, want alice", claims.Subject)
	}

	t.Run("missing subject rejected even with valid signature", func(t *testing.T) {
		raw := buildToken(t, `{"alg":"HS256"}`, `{"exp":9999999999}`, []byte(testSecret))
		if _, err := m.VerifyToken(raw); !errors.Is(err, ErrMissingSubject) {
			t.Errorf("got %v, want ErrMissingSubject", err)
		}
	})

	t.Run("alg none rejected even with well-formed payload", func(t *testing.T) {
		raw := buildToken(t, `{"alg":"none"}`, `{"sub":"alice","exp":9999999999}`, []byte(testSecret))
		if _, err := m.VerifyToken(raw); !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("got %v, want ErrUnsupportedAlgorithm", err)
		}
	})
}
