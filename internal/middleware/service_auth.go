package middleware

import (
	"strings"

	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// ServiceAuth validates X-Service-Key header for internal service-to-service authentication.
// When the caller also sends X-User-Scope, the propagated user scope is bound
// to the request context so handlers see the end user behind the calling service.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceKey := c.GetHeader("X-Service-Key")
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Decrypt service key using encrypter
		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Decrypted key format: serviceName:key
		parts := strings.SplitN(decryptedKey, ":", 2)
		if len(parts) != 2 {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName := parts[0]
		keyValue := parts[1]

		configuredKey, exists := m.config.InternalConfig.ServiceKeys[serviceName]
		if !exists {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if keyValue != configuredKey {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Propagated user scope is optional
		if scopeHeader := c.GetHeader("X-User-Scope"); scopeHeader != "" {
			sc, err := scope.ParseScopeHeader(scopeHeader)
			if err != nil {
				m.l.Errorf(c.Request.Context(), "ServiceAuth: Invalid X-User-Scope header: %v", err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
		}

		// Store service name in context for logging/audit
		c.Set("service_name", serviceName)
		c.Next()
	}
}
