package audit

import (
	"context"

	"auth-srv/internal/model"
)

// UseCase records and queries authentication events.
type UseCase interface {
	// Record persists an auth event and fans it out to the event stream.
	// It is best-effort: failures are logged and never propagate to the
	// request that triggered the event.
	Record(ctx context.Context, input RecordInput)

	// List returns audit events matching the filter, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
