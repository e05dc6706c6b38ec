package middleware

import (
	"context"
	"strings"
	"time"

	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const auditTimeout = 5 * time.Second

// Auth extracts and verifies the bearer token on the request.
//
// Requests without any credential pass through anonymously; routes that must
// not serve anonymous traffic chain RequireAuth after this. A present but
// non-Bearer Authorization header is rejected outright. A Bearer token that
// fails verification is rejected with a single generic message, whatever the
// stage it failed at.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Scheme prefix is matched case-sensitively, trailing space included
			if !strings.HasPrefix(authHeader, "Bearer ") {
				m.audit(c, model.AuthEventRejected, "", "malformed authorization header")
				response.Unauthorized(c, "malformed authorization header")
				c.Abort()
				return
			}
			tokenString = authHeader[len("Bearer "):]
		} else {
			// No header: fall back to the auth cookie, else pass through
			cookieToken, err := c.Cookie(m.cookieConfig.Name)
			if err != nil || cookieToken == "" {
				m.audit(c, model.AuthEventPassThrough, "", "")
				c.Next()
				return
			}
			tokenString = cookieToken
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			// The real failure goes to the audit trail, never to the caller
			m.audit(c, model.AuthEventRejected, "", err.Error())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Bind payload and scope to the request context for downstream handlers
		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		sc := scope.NewScope(payload)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		m.audit(c, model.AuthEventAccepted, payload.Subject, "")
		c.Next()
	}
}

// RequireAuth rejects requests that reached this point without a verified
// identity. Chain after Auth on protected routes.
func (m Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := scope.GetPayloadFromContext(c.Request.Context()); !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// InternalAuth validates the internal key from the Authorization header (Bearer <key> or raw key).
// If internalKey is empty, all requests are rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[len("Bearer "):]
		}
		if m.internalKey == "" || tokenString != m.internalKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// audit records an auth event off the request path. The recording context is
// detached so a finished request does not cancel the write.
func (m Middleware) audit(c *gin.Context, eventType, subject, reason string) {
	if m.auditUC == nil {
		return
	}

	input := audit.RecordInput{
		EventType: eventType,
		Subject:   subject,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Path:      c.Request.URL.Path,
		Reason:    reason,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		m.auditUC.Record(ctx, input)
	}()
}
