package audit

import "errors"

// Domain errors
var (
	// ErrInvalidEventType - unknown event type filter
	ErrInvalidEventType = errors.New("audit: invalid event type")

	// ErrInvalidPagination - limit/offset out of range
	ErrInvalidPagination = errors.New("audit: invalid pagination")
)
