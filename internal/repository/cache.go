package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const cacheKeyPrefix = "city:"

// RedisCache хранит ответы внешних API в Redis в виде JSON
type RedisCache struct {
	redisClient *redis.Client
}

func NewRedisCache(redisClient *redis.Client) service.Cache {
	return &RedisCache{
		redisClient: redisClient,
	}
}

// Get читает значение в dest; промах кеша - (false, nil)
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.redisClient.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

// Set сохраняет значение на ttl
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, cacheKeyPrefix+key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
