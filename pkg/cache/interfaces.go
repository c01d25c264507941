package cache

import (
	"time"

	"tracking-backend/internal/models"
)

// PositionCache keeps the latest reported position per driver in front of
// the authoritative store. A miss returns (nil, nil).
type PositionCache interface {
	GetPosition(driverID string) (*models.Position, error)
	SetPosition(driverID string, position *models.Position, ttl time.Duration) error
	InvalidatePosition(driverID string) error

	HealthCheck() error
	Close() error
}
