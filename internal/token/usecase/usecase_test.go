package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"auth-srv/config"
	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/internal/token"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	pkgRedis "auth-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeRedis) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok, nil
}

func (f *fakeRedis) TTL(ctx context.Context, key string) (time.Duration, error) {
	return time.Hour, nil
}

func (f *fakeRedis) Close() error                   { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error { return nil }
func (f *fakeRedis) GetClient() *goredis.Client     { return nil }

// brokenRedis simulates a blacklist store that is down.
type brokenRedis struct {
	*fakeRedis
}

func (b brokenRedis) Exists(ctx context.Context, key string) (bool, error) {
	return false, errors.New("connection refused")
}

type fakeAudit struct {
	mu     sync.Mutex
	inputs []audit.RecordInput
}

func (f *fakeAudit) Record(ctx context.Context, input audit.RecordInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
}

func (f *fakeAudit) List(ctx context.Context, sc model.Scope, input audit.ListInput) (audit.ListOutput, error) {
	return audit.ListOutput{}, nil
}

func (f *fakeAudit) last(t *testing.T) audit.RecordInput {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.inputs) == 0 {
		t.Fatal("no audit event recorded")
	}
	return f.inputs[len(f.inputs)-1]
}

func newTestUseCase(t *testing.T, redisClient pkgRedis.IRedis, enabled bool, auditUC audit.UseCase) (token.UseCase, jwt.IManager) {
	t.Helper()

	manager, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "auth-test", TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt.New() error = %v", err)
	}

	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	uc := New(manager, redisClient, config.BlacklistConfig{Enabled: enabled, KeyPrefix: "blacklist:"}, auditUC, l)
	return uc, manager
}

func TestIntrospect(t *testing.T) {
	ctx := context.Background()
	redisClient := newFakeRedis()
	uc, manager := newTestUseCase(t, redisClient, true, nil)

	tokenString, err := manager.GenerateToken("user-1", "alice", []string{"admin"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	t.Run("active token", func(t *testing.T) {
		out, err := uc.Introspect(ctx, token.IntrospectInput{Token: tokenString})
		if err != nil {
			t.Fatalf("Introspect() error = %v", err)
		}
		if !out.Active {
			t.Fatal("token should be active")
		}
		if out.Subject != "user-1" {
			t.Errorf("Subject = %q, want %q", out.Subject, "user-1")
		}
		if out.Username != "alice" {
			t.Errorf("Username = %q, want %q", out.Username, "alice")
		}
		if len(out.Roles) != 1 || out.Roles[0] != "admin" {
			t.Errorf("Roles = %v, want [admin]", out.Roles)
		}
		if out.TokenID == "" {
			t.Error("TokenID should be set")
		}
		if out.ExpiresAt == 0 {
			t.Error("ExpiresAt should be set")
		}
	})

	t.Run("garbage token is inactive not an error", func(t *testing.T) {
		out, err := uc.Introspect(ctx, token.IntrospectInput{Token: "not.a.token"})
		if err != nil {
			t.Fatalf("Introspect() error = %v", err)
		}
		if out.Active {
			t.Fatal("garbage token should be inactive")
		}
		if out.Subject != "" || out.TokenID != "" {
			t.Error("inactive response must not carry claims")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := uc.Introspect(ctx, token.IntrospectInput{})
		if err != token.ErrTokenRequired {
			t.Fatalf("error = %v, want ErrTokenRequired", err)
		}
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("revoked token becomes inactive", func(t *testing.T) {
		redisClient := newFakeRedis()
		uc, manager := newTestUseCase(t, redisClient, true, nil)

		tokenString, err := manager.GenerateToken("user-1", "alice", nil)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		if err := uc.Revoke(ctx, sc, token.RevokeInput{Token: tokenString}); err != nil {
			t.Fatalf("Revoke() error = %v", err)
		}

		out, err := uc.Introspect(ctx, token.IntrospectInput{Token: tokenString})
		if err != nil {
			t.Fatalf("Introspect() error = %v", err)
		}
		if out.Active {
			t.Fatal("revoked token should be inactive")
		}
	})

	t.Run("unverifiable token rejected", func(t *testing.T) {
		redisClient := newFakeRedis()
		uc, _ := newTestUseCase(t, redisClient, true, nil)

		err := uc.Revoke(ctx, sc, token.RevokeInput{Token: "not.a.token"})
		if err != token.ErrInvalidToken {
			t.Fatalf("error = %v, want ErrInvalidToken", err)
		}
		if len(redisClient.data) != 0 {
			t.Error("blacklist should stay empty for unverifiable tokens")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		uc, _ := newTestUseCase(t, newFakeRedis(), true, nil)
		if err := uc.Revoke(ctx, sc, token.RevokeInput{}); err != token.ErrTokenRequired {
			t.Fatalf("error = %v, want ErrTokenRequired", err)
		}
	})

	t.Run("blacklist disabled", func(t *testing.T) {
		uc, manager := newTestUseCase(t, newFakeRedis(), false, nil)

		tokenString, err := manager.GenerateToken("user-1", "alice", nil)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if err := uc.Revoke(ctx, sc, token.RevokeInput{Token: tokenString}); err != token.ErrBlacklistUnavailable {
			t.Fatalf("error = %v, want ErrBlacklistUnavailable", err)
		}
	})
}

func TestIntrospectBlacklistLookupFailure(t *testing.T) {
	ctx := context.Background()
	recorder := &fakeAudit{}
	uc, manager := newTestUseCase(t, brokenRedis{newFakeRedis()}, true, recorder)

	tokenString, err := manager.GenerateToken("user-1", "alice", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	out, err := uc.Introspect(ctx, token.IntrospectInput{Token: tokenString})
	if err != nil {
		t.Fatalf("Introspect() error = %v", err)
	}
	if out.Active {
		t.Fatal("lookup failure must fail closed, token should be inactive")
	}

	// The trail must name the lookup failure, not claim a revocation
	got := recorder.last(t)
	if got.Reason != "blacklist lookup failed" {
		t.Errorf("audit reason = %q, want %q", got.Reason, "blacklist lookup failed")
	}
	if got.Subject != "user-1" {
		t.Errorf("audit subject = %q, want %q", got.Subject, "user-1")
	}
}

func TestIntrospectRevokedReason(t *testing.T) {
	ctx := context.Background()
	recorder := &fakeAudit{}
	uc, manager := newTestUseCase(t, newFakeRedis(), true, recorder)

	tokenString, err := manager.GenerateToken("user-1", "alice", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if err := uc.Revoke(ctx, model.Scope{UserID: "user-1"}, token.RevokeInput{Token: tokenString}); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	out, err := uc.Introspect(ctx, token.IntrospectInput{Token: tokenString})
	if err != nil {
		t.Fatalf("Introspect() error = %v", err)
	}
	if out.Active {
		t.Fatal("revoked token should be inactive")
	}
	if got := recorder.last(t); got.Reason != "token revoked" {
		t.Errorf("audit reason = %q, want %q", got.Reason, "token revoked")
	}
}
