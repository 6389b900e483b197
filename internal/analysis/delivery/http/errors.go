package http

import (
	"errors"

	"vigil-srv/internal/analysis"
	pkgErrors "vigil-srv/pkg/errors"
)

var (
	errTextTooLong = pkgErrors.NewHTTPError(
		400, "Text too long (max 20000 characters)",
	)
	errBatchTooLarge = pkgErrors.NewHTTPError(
		400, "Batch too large (max 50 texts)",
	)
	errEmptyBatch = pkgErrors.NewHTTPError(
		400, "Batch must contain at least one text",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrTextTooLong):
		return errTextTooLong
	case errors.Is(err, analysis.ErrBatchTooLarge):
		return errBatchTooLarge
	case errors.Is(err, analysis.ErrEmptyBatch):
		return errEmptyBatch
	default:
		panic(err)
	}
}
