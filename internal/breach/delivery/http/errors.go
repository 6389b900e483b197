package http

import (
	"errors"
	"fmt"

	"vigil-srv/internal/breach"
	pkgErrors "vigil-srv/pkg/errors"
)

var (
	errInvalidEmail = pkgErrors.NewHTTPError(
		400, "Invalid email address",
	)
	errProviderUnavailable = pkgErrors.NewHTTPError(
		503, "Breach lookup service unavailable",
	)
)

func (h *handler) mapError(err error) error {
	var throttled *breach.ThrottledError
	switch {
	case errors.Is(err, breach.ErrInvalidEmail):
		return errInvalidEmail
	case errors.As(err, &throttled):
		message := "Breach lookup service unavailable"
		if throttled.RetryAfter != "" {
			message = fmt.Sprintf("Breach lookup service unavailable, retry after %s seconds", throttled.RetryAfter)
		}
		return pkgErrors.NewHTTPError(503, message)
	case errors.Is(err, breach.ErrProviderUnreachable):
		return errProviderUnavailable
	default:
		panic(err)
	}
}
