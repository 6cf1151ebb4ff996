package redis

import (
	"portfolio-srv/internal/portfolio/repository"
	"portfolio-srv/pkg/log"
	pkgRedis "portfolio-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
