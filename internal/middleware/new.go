package middleware

import (
	"auth-srv/config"
	"auth-srv/internal/audit"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/log"
	"auth-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	internalKey  string
	config       *config.Config
	encrypter    encrypter.Encrypter
	auditUC      audit.UseCase // nil disables audit recording
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internalKey string, cfg *config.Config, enc encrypter.Encrypter, auditUC audit.UseCase) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
		config:       cfg,
		encrypter:    enc,
		auditUC:      auditUC,
	}
}
