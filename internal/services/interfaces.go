package services

import (
	"tracking-backend/internal/models"
)

// DriverRepository is the persistence surface the registry and location
// services depend on. internal/repository provides the Mongo implementation.
type DriverRepository interface {
	Create(driver *models.Driver) (*models.Driver, error)
	FindByID(id string) (*models.Driver, error)
	FindAll() ([]*models.Driver, error)
	FindByVehicleType(vehicleType string) ([]*models.Driver, error)
	Update(id string, driver *models.Driver, documents map[string]string) (*models.Driver, error)
	UpdatePosition(id string, position *models.Position) error
	FindPosition(id string) (*models.Position, error)
	Delete(id string) error
}

type UserRepository interface {
	Create(user *models.User) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
}
