package cache

import "time"

// CacheConfig holds TTL and key layout for the position cache.
type CacheConfig struct {
	PositionTTL time.Duration `json:"positionTTL"` // short: positions churn constantly
	KeyPrefix   string        `json:"keyPrefix"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		PositionTTL: 30 * time.Second,
		KeyPrefix:   "tracking:",
	}
}
