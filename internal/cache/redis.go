package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trackify_backend/internal/logger"
	"trackify_backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares listing results across instances. Invalidation
// bumps a generation counter instead of scanning keys; stale entries
// simply expire.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

const generationKey = "trackify:complaints:gen"

func (c *RedisCache) key(ctx context.Context, scope string) string {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		logger.CtxWarn(ctx, "redis cache generation read failed", "error", err.Error())
	}
	return fmt.Sprintf("trackify:complaints:%d:%s", gen, scope)
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]models.Complaint, bool) {
	raw, err := c.client.Get(ctx, c.key(ctx, key)).Bytes()
	if err != nil {
		return nil, false
	}

	var complaints []models.Complaint
	if err := json.Unmarshal(raw, &complaints); err != nil {
		return nil, false
	}
	return complaints, true
}

func (c *RedisCache) Set(ctx context.Context, key string, complaints []models.Complaint) {
	raw, err := json.Marshal(complaints)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(ctx, key), raw, c.ttl).Err(); err != nil {
		logger.CtxWarn(ctx, "redis cache set failed", "error", err.Error())
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		logger.CtxWarn(ctx, "redis cache invalidate failed", "error", err.Error())
	}
}
