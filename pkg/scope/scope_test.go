package scope

import (
	"context"
	"reflect"
	"testing"

	"auth-srv/internal/model"
)

func TestNewScope(t *testing.T) {
	t.Run("user id from payload", func(t *testing.T) {
		sc := NewScope(Payload{UserID: "u-1", Subject: "alice", Username: "alice", Roles: []string{"admin"}})
		if sc.UserID != "u-1" {
			t.Errorf("UserID = %q, want %q", sc.UserID, "u-1")
		}
	})

	t.Run("falls back to subject", func(t *testing.T) {
		sc := NewScope(Payload{Subject: "alice"})
		if sc.UserID != "alice" {
			t.Errorf("UserID = %q, want %q", sc.UserID, "alice")
		}
	})
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()

	if sc := GetScopeFromContext(ctx); !reflect.DeepEqual(sc, model.Scope{}) {
		t.Errorf("unbound context should yield zero scope, got %+v", sc)
	}
	if _, ok := GetPayloadFromContext(ctx); ok {
		t.Error("unbound context should not carry a payload")
	}

	payload := Payload{UserID: "u-1", Subject: "alice"}
	ctx = SetPayloadToContext(ctx, payload)
	ctx = SetScopeToContext(ctx, NewScope(payload))

	got, ok := GetPayloadFromContext(ctx)
	if !ok || got.Subject != "alice" {
		t.Errorf("payload = %+v ok = %v, want subject alice", got, ok)
	}
	if sc := GetScopeFromContext(ctx); sc.UserID != "u-1" {
		t.Errorf("scope UserID = %q, want %q", sc.UserID, "u-1")
	}
}

func TestScopeHeaderRoundTrip(t *testing.T) {
	in := model.Scope{UserID: "u-1", Username: "alice", Role: "admin", Roles: []string{"admin", "viewer"}}

	header, err := CreateScopeHeader(in)
	if err != nil {
		t.Fatalf("CreateScopeHeader() error = %v", err)
	}

	out, err := ParseScopeHeader(header)
	if err != nil {
		t.Fatalf("ParseScopeHeader() error = %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch: in %+v out %+v", in, out)
	}
}

func TestParseScopeHeaderInvalid(t *testing.T) {
	if _, err := ParseScopeHeader("%%%not-base64%%%"); err == nil {
		t.Error("invalid base64 should fail")
	}
	if _, err := ParseScopeHeader("bm90IGpzb24="); err == nil {
		t.Error("non-JSON payload should fail")
	}
}
