package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/velora-studio/salon-scheduler/internal/config"
)

// Cache is a thin JSON cache over redis. A nil *Cache (redis unreachable
// at startup) degrades to a no-op so the API keeps serving from postgres.
type Cache struct {
	client *redis.Client
	logger zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, caching disabled")
		return nil
	}

	return &Cache{client: client, logger: logger}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache decode failed")
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("cache delete failed")
	}
}
