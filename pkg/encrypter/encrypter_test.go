package encrypter

import (
	"errors"
	"testing"
)

func TestEncrypter(t *testing.T) {
	e := New("0123456789abcdef0123456789abcdef")

	t.Run("round trip", func(t *testing.T) {
		ciphertext, err := e.Encrypt("gateway:super-secret")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		plaintext, err := e.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if plaintext != "gateway:super-secret" {
			t.Errorf("plaintext mismatch: got %s", plaintext)
		}
	})

	t.Run("wrong key fails", func(t *testing.T) {
		ciphertext, err := e.Encrypt("payload")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		other := New("fedcba9876543210fedcba9876543210")
		if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("got %v, want ErrDecryptionFailed", err)
		}
	})

	t.Run("invalid key length", func(t *testing.T) {
		bad := New("short")
		if _, err := bad.Encrypt("x"); !errors.Is(err, ErrInvalidKeyLength) {
			t.Errorf("got %v, want ErrInvalidKeyLength", err)
		}
	})

	t.Run("password hashing", func(t *testing.T) {
		hash, err := e.HashPassword("hunter2")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if !e.CheckPasswordHash("hunter2", hash) {
			t.Error("CheckPasswordHash should accept the original password")
		}
		if e.CheckPasswordHash("wrong", hash) {
			t.Error("CheckPasswordHash should reject a wrong password")
		}
	})
}
