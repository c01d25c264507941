package services

import (
	"log"

	"tracking-backend/internal/models"
	"tracking-backend/pkg/cache"
)

// LocationService holds the most recent position per driver: writes go to
// the store (last-writer-wins on the driver document), reads are cache-first.
type LocationService struct {
	driverRepo    DriverRepository
	positionCache cache.PositionCache
	cacheConfig   cache.CacheConfig
}

func NewLocationService(driverRepo DriverRepository) *LocationService {
	return &LocationService{
		driverRepo:  driverRepo,
		cacheConfig: cache.DefaultCacheConfig(),
	}
}

// SetPositionCache wires the Redis position cache. The service works without
// one, it just reads the store every time.
func (s *LocationService) SetPositionCache(positionCache cache.PositionCache) {
	s.positionCache = positionCache
}

// ReportLocationRequest uses pointers so that a missing coordinate is
// distinguishable from a report at zero: (0,0) is a valid position.
type ReportLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Timestamp string   `json:"timestamp"`
}

// Report overwrites the driver's position. The timestamp is stored as sent;
// when two reports race, arrival order at the store decides, not the
// caller-supplied timestamps.
func (s *LocationService) Report(driverID string, req *ReportLocationRequest) error {
	if req.Latitude == nil || req.Longitude == nil {
		return models.ErrMissingCoordinates
	}

	position := &models.Position{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: req.Timestamp,
	}

	if err := s.driverRepo.UpdatePosition(driverID, position); err != nil {
		return err
	}

	// best effort: the store already has the truth
	if s.positionCache != nil {
		if err := s.positionCache.SetPosition(driverID, position, s.cacheConfig.PositionTTL); err != nil {
			log.Printf("Failed to cache position for driver %s: %v", driverID, err)
		}
	}

	return nil
}

// Get returns the most recently written position for the driver.
func (s *LocationService) Get(driverID string) (*models.Position, error) {
	if s.positionCache != nil {
		cached, err := s.positionCache.GetPosition(driverID)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			log.Printf("Cache error for driver %s position: %v", driverID, err)
		}
	}

	position, err := s.driverRepo.FindPosition(driverID)
	if err != nil {
		return nil, err
	}

	if s.positionCache != nil {
		if err := s.positionCache.SetPosition(driverID, position, s.cacheConfig.PositionTTL); err != nil {
			log.Printf("Failed to cache position for driver %s: %v", driverID, err)
		}
	}

	return position, nil
}
