package usecase

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	producer kafka.IProducer // nil when the event stream is disabled
	l        log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	producer kafka.IProducer,
	l log.Logger,
) audit.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}
