package inventoryRepo

import (
	"context"
	"fmt"
	"time"

	"roomcheck/models"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const categoryCachePrefix = "inventory:categories:published:"

// defaultFlightTimeout bounds a shared store query when no caller deadline applies.
const defaultFlightTimeout = 10 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// cachedInventoryRepo serves the published-category listing from Redis.
// Unit and booking lookups always go to the store: a stale availability answer
// would be worse than a slow one.
type cachedInventoryRepo struct {
	Repository
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger

	flightTimeout time.Duration
}

// NewCachedInventoryRepo wraps next with a Redis read-through cache for ListPublishedCategories.
func NewCachedInventoryRepo(next Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) Repository {
	if client == nil || ttl <= 0 {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cachedInventoryRepo{
		Repository: next,
		client:     client,
		ttl:        ttl,
		logger:     logger,

		flightTimeout: defaultFlightTimeout,
	}
}

func categoryCacheKey(minCapacity int) string {
	return fmt.Sprintf("%s%d", categoryCachePrefix, minCapacity)
}

func (r *cachedInventoryRepo) ListPublishedCategories(ctx context.Context, minCapacity int) ([]models.RoomCategory, error) {
	key := categoryCacheKey(minCapacity)
	if categories, ok := r.readCache(ctx, key); ok {
		return categories, nil
	}

	// Concurrent misses for the same capacity share one store query. The flight
	// runs detached from any single caller so one caller giving up cannot fail
	// the others; each caller still stops waiting on its own ctx.
	ch := r.group.DoChan(key, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.flightTimeout)
		defer cancel()

		if categories, ok := r.readCache(flightCtx, key); ok {
			return categories, nil
		}
		categories, err := r.Repository.ListPublishedCategories(flightCtx, minCapacity)
		if err != nil {
			return nil, err
		}
		r.writeCache(flightCtx, key, categories)
		return categories, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.RoomCategory), nil
	}
}

// readCache treats any Redis failure as a miss.
func (r *cachedInventoryRepo) readCache(ctx context.Context, key string) ([]models.RoomCategory, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		r.logger.Warn("category cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var categories []models.RoomCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		r.logger.Warn("category cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (r *cachedInventoryRepo) writeCache(ctx context.Context, key string, categories []models.RoomCategory) {
	payload, err := json.Marshal(categories)
	if err != nil {
		r.logger.Warn("failed to encode categories for cache", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("category cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateCategories drops every cached category listing.
func InvalidateCategories(ctx context.Context, client *redis.Client) error {
	iter := client.Scan(ctx, 0, categoryCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan category cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete category cache keys: %w", err)
	}
	return nil
}
