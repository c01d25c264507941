package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tracking-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 2 * time.Second

// RedisPositionCache implements PositionCache on top of a shared Redis client.
type RedisPositionCache struct {
	client *redis.Client
	config CacheConfig
}

func NewRedisPositionCache(client *redis.Client, config CacheConfig) *RedisPositionCache {
	return &RedisPositionCache{
		client: client,
		config: config,
	}
}

func (c *RedisPositionCache) positionKey(driverID string) string {
	return fmt.Sprintf("%sposition:%s", c.config.KeyPrefix, driverID)
}

func (c *RedisPositionCache) GetPosition(driverID string) (*models.Position, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, c.positionKey(driverID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position from cache: %w", err)
	}

	var position models.Position
	if err := json.Unmarshal([]byte(data), &position); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached position: %w", err)
	}

	return &position, nil
}

func (c *RedisPositionCache) SetPosition(driverID string, position *models.Position, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := json.Marshal(position)
	if err != nil {
		return fmt.Errorf("failed to marshal position: %w", err)
	}

	if ttl <= 0 {
		ttl = c.config.PositionTTL
	}

	if err := c.client.Set(ctx, c.positionKey(driverID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache position: %w", err)
	}

	return nil
}

func (c *RedisPositionCache) InvalidatePosition(driverID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, c.positionKey(driverID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate position: %w", err)
	}

	return nil
}

func (c *RedisPositionCache) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func (c *RedisPositionCache) Close() error {
	return c.client.Close()
}
