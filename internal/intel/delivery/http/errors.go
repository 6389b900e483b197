package http

import (
	"errors"

	"vigil-srv/internal/intel"
	pkgErrors "vigil-srv/pkg/errors"
)

var (
	errInvalidDays = pkgErrors.NewHTTPError(
		400, "Days out of range (1-90)",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intel.ErrInvalidDays):
		return errInvalidDays
	default:
		panic(err)
	}
}
