package redis

import (
	"context"
	"log"
	"time"

	"tracking-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client and verifies connectivity. A failed ping
// is logged but not fatal: the position cache and rate limiter degrade to
// store-only operation while Redis is down, and the go-redis pool reconnects
// on its own.
func NewClient(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection test failed: %v", err)
	} else {
		log.Printf("Redis connected successfully at %s", cfg.Addr)
	}

	return client
}
