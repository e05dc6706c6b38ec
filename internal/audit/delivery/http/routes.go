package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth(), mw.RequireAuth())
	{
		api.GET("/audit-events", h.ListEvents)
	}
}
