package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-srv/config"
	"auth-srv/internal/model"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const testEncrypterKey = "abcdef0123456789abcdef0123456789"

func newServiceAuthRouter(t *testing.T) (*gin.Engine, encrypter.Encrypter) {
	t.Helper()

	manager, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "auth-test"})
	if err != nil {
		t.Fatalf("jwt.New() error = %v", err)
	}

	enc := encrypter.New(testEncrypterKey)
	cfg := &config.Config{
		InternalConfig: config.InternalConfig{
			ServiceKeys: map[string]string{
				"billing-srv": "svc-key-1",
			},
		},
	}

	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	mw := New(l, manager, config.CookieConfig{Name: testCookieName}, "", cfg, enc, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/service", mw.ServiceAuth(), func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"service_name": c.GetString("service_name"),
			"user_id":      sc.UserID,
		})
	})
	return r, enc
}

func doPostRequest(r *gin.Engine, path string, setup func(req *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func encryptServiceKey(t *testing.T, enc encrypter.Encrypter, plaintext string) string {
	t.Helper()
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	return ciphertext
}

func TestServiceAuth(t *testing.T) {
	r, enc := newServiceAuthRouter(t)

	t.Run("valid service key", func(t *testing.T) {
		w := doPostRequest(r, "/service", func(req *http.Request) {
			req.Header.Set("X-Service-Key", encryptServiceKey(t, enc, "billing-srv:svc-key-1"))
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["service_name"] != "billing-srv" {
			t.Errorf("service_name = %q, want %q", body["service_name"], "billing-srv")
		}
	})

	rejected := map[string]string{
		"missing header":      "",
		"not a ciphertext":    "plainly-not-encrypted",
		"key without service": encryptServiceKey(t, enc, "just-a-key-no-colon"),
		"unknown service":     encryptServiceKey(t, enc, "rogue-srv:svc-key-1"),
		"wrong key value":     encryptServiceKey(t, enc, "billing-srv:wrong-key"),
	}

	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			w := doPostRequest(r, "/service", func(req *http.Request) {
				if header != "" {
					req.Header.Set("X-Service-Key", header)
				}
			})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestServiceAuthUserScopePropagation(t *testing.T) {
	r, enc := newServiceAuthRouter(t)
	serviceKey := encryptServiceKey(t, enc, "billing-srv:svc-key-1")

	t.Run("valid user scope", func(t *testing.T) {
		scopeHeader, err := scope.CreateScopeHeader(model.Scope{UserID: "user-9", Username: "dave"})
		if err != nil {
			t.Fatalf("CreateScopeHeader() error = %v", err)
		}

		w := doPostRequest(r, "/service", func(req *http.Request) {
			req.Header.Set("X-Service-Key", serviceKey)
			req.Header.Set("X-User-Scope", scopeHeader)
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["user_id"] != "user-9" {
			t.Errorf("user_id = %q, want %q", body["user_id"], "user-9")
		}
	})

	t.Run("garbage user scope rejected", func(t *testing.T) {
		w := doPostRequest(r, "/service", func(req *http.Request) {
			req.Header.Set("X-Service-Key", serviceKey)
			req.Header.Set("X-User-Scope", "%%%not-base64%%%")
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("scope absent stays anonymous", func(t *testing.T) {
		w := doPostRequest(r, "/service", func(req *http.Request) {
			req.Header.Set("X-Service-Key", serviceKey)
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if body["user_id"] != "" {
			t.Errorf("user_id = %q, want empty", body["user_id"])
		}
	})
}
