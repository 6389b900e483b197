package http

import (
	"errors"

	"vigil-srv/internal/assessment"
	pkgErrors "vigil-srv/pkg/errors"
)

var (
	errEmptyDescription = pkgErrors.NewHTTPError(
		400, "Description is required",
	)
	errDescriptionTooLong = pkgErrors.NewHTTPError(
		400, "Description too long",
	)
	errInvalidReportType = pkgErrors.NewHTTPError(
		400, "Invalid report type (executive, technical or incident)",
	)
	errScanNotFound = pkgErrors.NewHTTPError(
		404, "Scan not found",
	)
	errInvalidStatus = pkgErrors.NewHTTPError(
		400, "Invalid scan status filter",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assessment.ErrEmptyDescription):
		return errEmptyDescription
	case errors.Is(err, assessment.ErrDescriptionTooLong):
		return errDescriptionTooLong
	case errors.Is(err, assessment.ErrInvalidReportType):
		return errInvalidReportType
	case errors.Is(err, assessment.ErrScanNotFound):
		return errScanNotFound
	case errors.Is(err, assessment.ErrInvalidStatus):
		return errInvalidStatus
	default:
		panic(err)
	}
}
