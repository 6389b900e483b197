package intel

import "errors"

var (
	ErrInvalidDays = errors.New("days out of range")
)
