package usecase

import (
	"vigil-srv/internal/intel"
	"vigil-srv/internal/intel/repository"
	"vigil-srv/pkg/log"
)

type implUseCase struct {
	feed  repository.FeedRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function. cache may be nil; overviews are then rebuilt
// on every request.
func New(feed repository.FeedRepository, cache repository.CacheRepository, l log.Logger) intel.UseCase {
	return &implUseCase{
		feed:  feed,
		cache: cache,
		l:     l,
	}
}
