package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")

	// Whoami for authenticated end users
	api.GET("/me", mw.Auth(), mw.RequireAuth(), h.Me)

	tokens := api.Group("/tokens")
	{
		// Introspection is for trusted services only
		tokens.POST("/introspect", mw.ServiceAuth(), h.Introspect)
		tokens.POST("/revoke", mw.Auth(), mw.RequireAuth(), h.Revoke)
	}

	// Ops tooling authenticates with the shared internal key instead of a
	// per-service encrypted key
	internalAPI := r.Group("/internal/api/v1")
	internalAPI.Use(mw.InternalAuth())
	{
		internalAPI.POST("/tokens/introspect", h.Introspect)
	}
}
