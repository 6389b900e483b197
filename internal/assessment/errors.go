package assessment

import "errors"

var (
	ErrEmptyDescription   = errors.New("description is empty")
	ErrDescriptionTooLong = errors.New("description too long")
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrScanNotFound       = errors.New("scan not found")
	ErrInvalidStatus      = errors.New("invalid scan status")
)
