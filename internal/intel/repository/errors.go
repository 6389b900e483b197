package repository

import "errors"

var (
	ErrCacheMiss     = errors.New("cache miss")
	ErrFeedExhausted = errors.New("all feed endpoints failed")
)
