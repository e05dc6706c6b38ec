package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	auditHTTP "auth-srv/internal/audit/delivery/http"
	"auth-srv/internal/middleware"
)

func (srv *HTTPServer) setupAuditDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := auditHTTP.New(srv.l, srv.auditUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Audit domain registered")
	return nil
}
