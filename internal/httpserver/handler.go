package httpserver

import (
	"context"

	auditPostgre "auth-srv/internal/audit/repository/postgre"
	auditUsecase "auth-srv/internal/audit/usecase"
	"auth-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	// Audit comes first: the auth middleware records events through it
	auditRepo := auditPostgre.New(srv.postgresDB, srv.l)
	srv.auditUC = auditUsecase.New(auditRepo, srv.kafkaProducer, srv.l)

	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig,
		srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter, srv.auditUC)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	root := srv.gin.Group("")
	if err := srv.setupTokenDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupAuditDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost)", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
