// Package tacacsservice provides CRUD operations for managing service descriptors.
package tacacsservice

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceNameEmpty is returned when attempting to create/update a service with an empty name.
	ErrServiceNameEmpty = errors.New("service name cannot be empty")
	// ErrServiceAlreadyExists is returned when attempting to create a service that already exists.
	ErrServiceAlreadyExists = errors.New("service already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a service by its name.
func Get(db *gorm.DB, name string) (*models.TacacsService, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrServiceNameEmpty
	}

	var service models.TacacsService
	result := db.Where(nameQueryPattern, name).First(&service)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, result.Error
	}

	return &service, nil
}

// GetAll retrieves all services in insertion order.
func GetAll(db *gorm.DB) ([]models.TacacsService, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.TacacsService
	result := db.Order("id").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// Create creates a new service in the database.
func Create(db *gorm.DB, service *models.TacacsService) (*models.TacacsService, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if service.Name == "" {
		return nil, ErrServiceNameEmpty
	}

	var existing models.TacacsService
	result := db.Where(nameQueryPattern, service.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrServiceAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(service)
	if result.Error != nil {
		return nil, result.Error
	}

	return service, nil
}

// Update updates an existing service by ID.
func Update(db *gorm.DB, id uint64, service *models.TacacsService) (*models.TacacsService, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.TacacsService
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, result.Error
	}

	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt
	result = db.Save(service)
	if result.Error != nil {
		return nil, result.Error
	}

	return service, nil
}

// Delete deletes a service by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.TacacsService{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
