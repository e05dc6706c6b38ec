package usecase

import (
	"context"

	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
	"auth-srv/internal/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

var validEventTypes = map[string]bool{
	model.AuthEventAccepted:    true,
	model.AuthEventRejected:    true,
	model.AuthEventIntrospect:  true,
	model.AuthEventRevoked:     true,
	model.AuthEventPassThrough: true,
}

// List returns audit events matching the filter, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input audit.ListInput) (audit.ListOutput, error) {
	if input.EventType != "" && !validEventTypes[input.EventType] {
		return audit.ListOutput{}, audit.ErrInvalidEventType
	}
	if input.Limit < 0 || input.Offset < 0 {
		return audit.ListOutput{}, audit.ErrInvalidPagination
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	events, total, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		EventType: input.EventType,
		Subject:   input.Subject,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.List: Failed to list events: %v", err)
		return audit.ListOutput{}, err
	}

	return audit.ListOutput{
		Events: events,
		Total:  total,
	}, nil
}
