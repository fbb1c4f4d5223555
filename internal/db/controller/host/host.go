// Package host provides CRUD operations for managing NAS devices.
package host

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrHostNotFound is returned when a host is not found.
	ErrHostNotFound = errors.New("host not found")
	// ErrHostNameEmpty is returned when attempting to create/update a host with an empty name.
	ErrHostNameEmpty = errors.New("host name cannot be empty")
	// ErrHostAlreadyExists is returned when attempting to create a host that already exists.
	ErrHostAlreadyExists = errors.New("host already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a host by its name.
func Get(db *gorm.DB, name string) (*models.Host, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrHostNameEmpty
	}

	var host models.Host
	result := db.Where(nameQueryPattern, name).First(&host)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, result.Error
	}

	return &host, nil
}

// GetByID retrieves a host by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Host, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var host models.Host
	result := db.First(&host, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, result.Error
	}

	return &host, nil
}

// GetAll retrieves all hosts in insertion order.
func GetAll(db *gorm.DB) ([]models.Host, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var hosts []models.Host
	result := db.Order("id").Find(&hosts)
	if result.Error != nil {
		return nil, result.Error
	}

	return hosts, nil
}

// Create creates a new host in the database.
func Create(db *gorm.DB, host *models.Host) (*models.Host, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if host.Name == "" {
		return nil, ErrHostNameEmpty
	}

	// Check if host already exists
	var existing models.Host
	result := db.Where(nameQueryPattern, host.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrHostAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(host)
	if result.Error != nil {
		return nil, result.Error
	}

	return host, nil
}

// Update updates an existing host by ID.
func Update(db *gorm.DB, id uint64, host *models.Host) (*models.Host, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Host
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrHostNotFound
		}
		return nil, result.Error
	}

	host.ID = existing.ID
	host.CreatedAt = existing.CreatedAt
	result = db.Save(host)
	if result.Error != nil {
		return nil, result.Error
	}

	return host, nil
}

// Delete deletes a host by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Host{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHostNotFound
	}

	return nil
}
