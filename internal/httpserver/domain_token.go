package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"auth-srv/internal/middleware"
	tokenHTTP "auth-srv/internal/token/delivery/http"
	tokenUsecase "auth-srv/internal/token/usecase"
)

func (srv *HTTPServer) setupTokenDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := tokenUsecase.New(srv.jwtManager, srv.redisClient, srv.config.Blacklist, srv.auditUC, srv.l)

	handler := tokenHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Token domain registered")
	return nil
}
