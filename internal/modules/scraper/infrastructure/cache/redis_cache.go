package cache

import (
	"context"
	"errors"
	"time"

	"JobTracker/internal/modules/scraper/application/service"
	"JobTracker/pkg/redis"
)

type redisCache struct{}

// NewRedisCache redis 未连接时返回 nil，抓取服务据此跳过缓存
func NewRedisCache() service.Cache {
	if !redis.IsConnected() {
		return nil
	}
	return redisCache{}
}

func (redisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := redis.Get(ctx, key)
	if errors.Is(err, redis.ErrNil) {
		return "", service.ErrCacheMiss
	}
	return v, err
}

func (redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return redis.Set(ctx, key, value, ttl)
}
