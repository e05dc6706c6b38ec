package http

import (
	"errors"

	"auth-srv/internal/token"
	pkgErrors "auth-srv/pkg/errors"
)

var (
	errTokenRequired        = pkgErrors.NewHTTPError(400, "Token is required")
	errInvalidToken         = pkgErrors.NewHTTPError(400, "Token is not valid for revocation")
	errBlacklistUnavailable = pkgErrors.NewHTTPError(503, "Revocation is temporarily unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, token.ErrTokenRequired):
		return errTokenRequired
	case errors.Is(err, token.ErrInvalidToken):
		return errInvalidToken
	case errors.Is(err, token.ErrBlacklistUnavailable):
		return errBlacklistUnavailable
	default:
		panic(err)
	}
}
