// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"roomcheck/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the category cache.
var CacheClient *redis.Client

// InitCache initializes the cache client using REDIS_CACHE_DB. The cache is
// optional: on a failed ping the client is dropped and an error returned.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
