package usecase

import (
	"context"
	"encoding/json"

	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
)

// Record persists the event and publishes it to the stream. Both writes are
// best-effort: an audit failure must never turn into a request failure, so
// errors are logged and swallowed here.
func (uc *implUseCase) Record(ctx context.Context, input audit.RecordInput) {
	event, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		EventType: input.EventType,
		Subject:   input.Subject,
		ClientIP:  input.ClientIP,
		UserAgent: input.UserAgent,
		Path:      input.Path,
		Reason:    input.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Record: Failed to persist event: %v", err)
		return
	}

	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Record: Failed to marshal event: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(event.EventType), payload); err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Record: Failed to publish event: %v", err)
	}
}
