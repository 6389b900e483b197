package usecase

import (
	"vigil-srv/internal/breach"
	"vigil-srv/internal/breach/repository"
	"vigil-srv/pkg/log"
)

type implUseCase struct {
	lookup repository.LookupRepository
	cache  repository.CacheRepository
	l      log.Logger
}

// New - Factory function. cache may be nil; every check then hits the
// provider directly.
func New(lookup repository.LookupRepository, cache repository.CacheRepository, l log.Logger) breach.UseCase {
	return &implUseCase{
		lookup: lookup,
		cache:  cache,
		l:      l,
	}
}
