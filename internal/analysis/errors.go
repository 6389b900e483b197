package analysis

import "errors"

// Domain errors
var (
	// ErrTextTooLong - text exceeds MaxTextLength
	ErrTextTooLong = errors.New("analysis: text too long")

	// ErrBatchTooLarge - batch exceeds MaxBatchSize texts
	ErrBatchTooLarge = errors.New("analysis: batch too large")

	// ErrEmptyBatch - batch contains no texts
	ErrEmptyBatch = errors.New("analysis: empty batch")
)
