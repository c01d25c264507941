package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles location reports per driver id. Allow returns whether
// the request may proceed and, when blocked, how long until the window resets.
type RateLimiter interface {
	Allow(key string) (bool, time.Duration, error)
}

// Config defines the limiter window.
type Config struct {
	Enabled           bool
	RequestsPerWindow int
	Window            time.Duration
	RedisKeyPrefix    string
}

// DefaultConfig allows 120 reports per minute per driver, which comfortably
// covers periodic device reporting.
func DefaultConfig() *Config {
	return &Config{
		Enabled:           true,
		RequestsPerWindow: 120,
		Window:            time.Minute,
		RedisKeyPrefix:    "tracking:ratelimit:",
	}
}

// RedisRateLimiter implements RateLimiter with a fixed window counter in
// Redis. The window check and increment run in one Lua script so concurrent
// reports for the same driver never double-count.
type RedisRateLimiter struct {
	client *redis.Client
	config *Config
}

func NewRedisRateLimiter(client *redis.Client, config *Config) *RedisRateLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	return &RedisRateLimiter{
		client: client,
		config: config,
	}
}

var windowScript = redis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local window_ms = tonumber(ARGV[2])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('PEXPIRE', key, window_ms)
	end

	local ttl = redis.call('PTTL', key)
	if ttl < 0 then
		ttl = window_ms
	end

	if count > limit then
		return {0, ttl}
	end
	return {1, ttl}
`)

func (r *RedisRateLimiter) Allow(key string) (bool, time.Duration, error) {
	if !r.config.Enabled {
		return true, 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	redisKey := r.config.RedisKeyPrefix + key

	result, err := windowScript.Run(ctx, r.client, []string{redisKey},
		r.config.RequestsPerWindow,
		r.config.Window.Milliseconds()).Result()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return false, 0, fmt.Errorf("unexpected rate limit script result: %v", result)
	}

	allowed := values[0].(int64) == 1
	retryAfter := time.Duration(values[1].(int64)) * time.Millisecond

	if allowed {
		return true, 0, nil
	}
	return false, retryAfter, nil
}
