package repository

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.AuthEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.AuthEvent, int64, error)
}
