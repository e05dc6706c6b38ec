package http

import (
	"errors"

	"auth-srv/internal/audit"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errInvalidEventType  = pkgErrors.NewHTTPError(400, "Invalid event type")
	errInvalidPagination = pkgErrors.NewHTTPError(400, "Invalid pagination")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, audit.ErrInvalidEventType):
		return errInvalidEventType
	case errors.Is(err, audit.ErrInvalidPagination):
		return errInvalidPagination
	default:
		panic(err)
	}
}
