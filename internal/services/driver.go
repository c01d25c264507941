package services

import (
	"log"
	"time"

	"tracking-backend/internal/models"
	"tracking-backend/pkg/cache"
)

// DriverService owns the authoritative set of driver records.
type DriverService struct {
	driverRepo    DriverRepository
	positionCache cache.PositionCache
}

func NewDriverService(driverRepo DriverRepository) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
	}
}

// SetPositionCache wires the position cache so deletes can drop stale entries.
func (s *DriverService) SetPositionCache(positionCache cache.PositionCache) {
	s.positionCache = positionCache
}

type CreateDriverRequest struct {
	Name          string `form:"name" json:"name" validate:"required"`
	VehicleNumber string `form:"vehicleNumber" json:"vehicleNumber" validate:"required"`
	Phone         string `form:"phone" json:"phone" validate:"required"`
	Status        string `form:"status" json:"status" validate:"required"`
	VehicleType   string `form:"vehicleType" json:"vehicleType"`
}

// UpdateDriverRequest carries the full replacement for the scalar fields.
// Partial scalar updates are not supported; document references are replaced
// only when a new upload is present in the request.
type UpdateDriverRequest struct {
	Name          string `form:"name" json:"name" validate:"required"`
	VehicleNumber string `form:"vehicleNumber" json:"vehicleNumber" validate:"required"`
	Phone         string `form:"phone" json:"phone" validate:"required"`
	Status        string `form:"status" json:"status" validate:"required"`
	VehicleType   string `form:"vehicleType" json:"vehicleType"`
}

// CreateDriver inserts a new driver record. documents maps a document kind to
// a stored reference; missing kinds simply stay absent. vehicle_number and
// phone are not unique, duplicates are accepted.
func (s *DriverService) CreateDriver(req *CreateDriverRequest, documents map[string]string) (*models.Driver, error) {
	driver := &models.Driver{
		Name:          req.Name,
		VehicleNumber: req.VehicleNumber,
		Phone:         req.Phone,
		Status:        req.Status,
		VehicleType:   req.VehicleType,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if len(documents) > 0 {
		driver.Documents = documents
	}

	return s.driverRepo.Create(driver)
}

func (s *DriverService) GetDriver(id string) (*models.Driver, error) {
	return s.driverRepo.FindByID(id)
}

// ListDrivers returns all drivers, or only those with the given vehicle type
// when the filter is non-empty. Ordering is whatever the store returns.
func (s *DriverService) ListDrivers(vehicleType string) ([]*models.Driver, error) {
	if vehicleType == "" {
		return s.driverRepo.FindAll()
	}
	return s.driverRepo.FindByVehicleType(vehicleType)
}

func (s *DriverService) UpdateDriver(id string, req *UpdateDriverRequest, documents map[string]string) (*models.Driver, error) {
	driver := &models.Driver{
		Name:          req.Name,
		VehicleNumber: req.VehicleNumber,
		Phone:         req.Phone,
		Status:        req.Status,
		VehicleType:   req.VehicleType,
	}

	return s.driverRepo.Update(id, driver, documents)
}

// DeleteDriver removes the record. Stored document blobs are not cascaded;
// their references die with the record.
func (s *DriverService) DeleteDriver(id string) error {
	if err := s.driverRepo.Delete(id); err != nil {
		return err
	}

	if s.positionCache != nil {
		if err := s.positionCache.InvalidatePosition(id); err != nil {
			log.Printf("Failed to invalidate position cache for driver %s: %v", id, err)
		}
	}

	return nil
}
