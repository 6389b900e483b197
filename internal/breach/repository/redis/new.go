package redis

import (
	"vigil-srv/internal/breach/repository"
	"vigil-srv/pkg/log"
	pkgRedis "vigil-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory function
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
