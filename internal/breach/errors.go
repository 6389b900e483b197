package breach

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrProviderUnreachable = errors.New("breach provider unreachable")
)

// ThrottledError is returned when the lookup provider rejects the request
// for rate or access reasons. RetryAfter is the provider's hint, if any.
type ThrottledError struct {
	RetryAfter string
}

func (e *ThrottledError) Error() string {
	if e.RetryAfter == "" {
		return "breach provider throttled"
	}
	return fmt.Sprintf("breach provider throttled, retry after %s", e.RetryAfter)
}
