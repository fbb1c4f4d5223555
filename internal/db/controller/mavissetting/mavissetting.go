// Package mavissetting provides CRUD operations for the mavis module
// environment settings. Their insertion order is the order in which they are
// rendered into the generated mavis block.
package mavissetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const keyQueryPattern = "mavis_key = ?"

var (
	// ErrSettingNotFound is returned when a mavis setting is not found.
	ErrSettingNotFound = errors.New("mavis setting not found")
	// ErrSettingKeyEmpty is returned when attempting to create/update a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("mavis setting key cannot be empty")
	// ErrSettingAlreadyExists is returned when attempting to create a setting that already exists.
	ErrSettingAlreadyExists = errors.New("mavis setting already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a mavis setting by its key.
func Get(db *gorm.DB, key string) (*models.MavisSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.MavisSetting
	result := db.Where(keyQueryPattern, key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all mavis settings in insertion order.
func GetAll(db *gorm.DB) ([]models.MavisSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.MavisSetting
	result := db.Order("id").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Create creates a new mavis setting.
func Create(db *gorm.DB, key, value string) (*models.MavisSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var existing models.MavisSetting
	result := db.Where(keyQueryPattern, key).First(&existing)
	if result.Error == nil {
		return nil, ErrSettingAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	setting := &models.MavisSetting{Key: key, Value: value}
	result = db.Create(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Set creates or updates a mavis setting by key (upsert operation).
func Set(db *gorm.DB, key, value string) (*models.MavisSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.MavisSetting
	result := db.Where(keyQueryPattern, key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Create(db, key, value)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	setting.Value = value
	result = db.Save(&setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

// Delete deletes a mavis setting by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.MavisSetting{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}
