package repository

import "errors"

var (
	ErrCacheMiss = errors.New("cache miss")
)
