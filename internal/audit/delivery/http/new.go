package http

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/middleware"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for audit HTTP handlers
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      audit.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc audit.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
