package services

import (
	"time"

	"tracking-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(driver *models.Driver) (*models.Driver, error) {
	args := m.Called(driver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByID(id string) (*models.Driver, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindAll() ([]*models.Driver, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindByVehicleType(vehicleType string) ([]*models.Driver, error) {
	args := m.Called(vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) Update(id string, driver *models.Driver, documents map[string]string) (*models.Driver, error) {
	args := m.Called(id, driver, documents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverRepository) UpdatePosition(id string, position *models.Position) error {
	args := m.Called(id, position)
	return args.Error(0)
}

func (m *MockDriverRepository) FindPosition(id string) (*models.Position, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Position), args.Error(1)
}

func (m *MockDriverRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPositionCache struct {
	mock.Mock
}

func (m *MockPositionCache) GetPosition(driverID string) (*models.Position, error) {
	args := m.Called(driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Position), args.Error(1)
}

func (m *MockPositionCache) SetPosition(driverID string, position *models.Position, ttl time.Duration) error {
	args := m.Called(driverID, position, ttl)
	return args.Error(0)
}

func (m *MockPositionCache) InvalidatePosition(driverID string) error {
	args := m.Called(driverID)
	return args.Error(0)
}

func (m *MockPositionCache) HealthCheck() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPositionCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
