// Package configoption provides CRUD operations for free-form configuration
// option blocks injected into generated sections.
package configoption

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrOptionNotFound is returned when a configuration option is not found.
	ErrOptionNotFound = errors.New("configuration option not found")
	// ErrOptionNameEmpty is returned when attempting to create/update an option with an empty name.
	ErrOptionNameEmpty = errors.New("configuration option name cannot be empty")
	// ErrOptionAlreadyExists is returned when attempting to create an option that already exists.
	ErrOptionAlreadyExists = errors.New("configuration option already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a configuration option by its section name.
func Get(db *gorm.DB, name string) (*models.ConfigurationOption, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrOptionNameEmpty
	}

	var option models.ConfigurationOption
	result := db.Where(nameQueryPattern, name).First(&option)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, result.Error
	}

	return &option, nil
}

// GetAll retrieves all configuration options in insertion order.
func GetAll(db *gorm.DB) ([]models.ConfigurationOption, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var options []models.ConfigurationOption
	result := db.Order("id").Find(&options)
	if result.Error != nil {
		return nil, result.Error
	}

	return options, nil
}

// Create creates a new configuration option.
func Create(db *gorm.DB, option *models.ConfigurationOption) (*models.ConfigurationOption, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if option.Name == "" {
		return nil, ErrOptionNameEmpty
	}

	var existing models.ConfigurationOption
	result := db.Where(nameQueryPattern, option.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrOptionAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(option)
	if result.Error != nil {
		return nil, result.Error
	}

	return option, nil
}

// Update updates an existing configuration option by ID.
func Update(db *gorm.DB, id uint64, option *models.ConfigurationOption) (*models.ConfigurationOption, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.ConfigurationOption
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, result.Error
	}

	option.ID = existing.ID
	option.CreatedAt = existing.CreatedAt
	result = db.Save(option)
	if result.Error != nil {
		return nil, result.Error
	}

	return option, nil
}

// Delete deletes a configuration option by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ConfigurationOption{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}
