package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/clients/redis"
	"growth-server/internal/observability"
	"growth-server/internal/store"
)

// cacheDepth is how many top entries are cached per bucket; deeper reads go to the store
const cacheDepth = 100

// RedisCache keeps the top of each bucket in Redis as a JSON snapshot. Snapshots are
// dropped whenever the bucket is recomputed and otherwise expire after ttl.
type RedisCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

// NewRedisCache creates a cache. A disabled or nil client yields a cache whose reads
// always miss.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *observability.Logger) *RedisCache {
	return &RedisCache{
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) buildKey(lbType, period string) string {
	return fmt.Sprintf("lb:top:%s:%s", lbType, period)
}

// GetTop returns the cached top entries. ok is false on a miss.
func (c *RedisCache) GetTop(ctx context.Context, lbType, period string) ([]store.LeaderboardEntry, bool) {
	if !c.redis.IsEnabled() {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, c.buildKey(lbType, period))
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "leaderboard cache read failed")
		}
		return nil, false
	}

	var entries []store.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.logger.Warn(ctx, "leaderboard cache entry is corrupt")
		return nil, false
	}
	return entries, true
}

// SetTop stores the top of a bucket
func (c *RedisCache) SetTop(ctx context.Context, lbType, period string, entries []store.LeaderboardEntry) {
	if !c.redis.IsEnabled() {
		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		c.logger.Error(ctx, "failed to encode leaderboard cache entry", err)
		return
	}
	if err := c.redis.Set(ctx, c.buildKey(lbType, period), raw, c.ttl); err != nil {
		c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "leaderboard cache write failed")
	}
}

// Invalidate drops the cached top of a bucket
func (c *RedisCache) Invalidate(ctx context.Context, lbType, period string) {
	if !c.redis.IsEnabled() {
		return
	}
	if err := c.redis.Del(ctx, c.buildKey(lbType, period)); err != nil {
		c.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error", Value: err.Error()}), "leaderboard cache invalidation failed")
	}
}
