package usecase

import (
	"auth-srv/config"
	"auth-srv/internal/audit"
	"auth-srv/internal/token"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	"auth-srv/pkg/redis"
)

type implUseCase struct {
	jwtManager   jwt.IManager
	redis        redis.IRedis
	blacklistCfg config.BlacklistConfig
	auditUC      audit.UseCase // nil disables audit recording
	l            log.Logger
}

// New - Factory function
func New(
	jwtManager jwt.IManager,
	redisClient redis.IRedis,
	blacklistCfg config.BlacklistConfig,
	auditUC audit.UseCase,
	l log.Logger,
) token.UseCase {
	return &implUseCase{
		jwtManager:   jwtManager,
		redis:        redisClient,
		blacklistCfg: blacklistCfg,
		auditUC:      auditUC,
		l:            l,
	}
}
