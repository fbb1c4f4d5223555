// Package tacacsconfig provides the store operations for compiled
// configuration artifact records, including the single-active invariant.
package tacacsconfig

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const filenameQueryPattern = "filename = ?"

var (
	// ErrConfigNotFound is returned when a config record is not found.
	ErrConfigNotFound = errors.New("tacacs config not found")
	// ErrFilenameEmpty is returned when attempting to create a config with an empty filename.
	ErrFilenameEmpty = errors.New("tacacs config filename cannot be empty")
	// ErrConfigAlreadyExists is returned when attempting to create a config whose filename is taken.
	ErrConfigAlreadyExists = errors.New("tacacs config already exists")
	// ErrNoActiveConfig is returned when no config is currently active.
	ErrNoActiveConfig = errors.New("no active tacacs config")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a config record by its filename.
func Get(db *gorm.DB, filename string) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if filename == "" {
		return nil, ErrFilenameEmpty
	}

	var cfg models.TacacsConfig
	result := db.Where(filenameQueryPattern, filename).First(&cfg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, result.Error
	}

	return &cfg, nil
}

// GetByID retrieves a config record by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cfg models.TacacsConfig
	result := db.First(&cfg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, result.Error
	}

	return &cfg, nil
}

// GetAll retrieves all config records in insertion order.
func GetAll(db *gorm.DB) ([]models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cfgs []models.TacacsConfig
	result := db.Order("id").Find(&cfgs)
	if result.Error != nil {
		return nil, result.Error
	}

	return cfgs, nil
}

// GetActive retrieves the one currently active config record.
func GetActive(db *gorm.DB) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cfg models.TacacsConfig
	result := db.Where("active = ?", true).First(&cfg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveConfig
		}
		return nil, result.Error
	}

	return &cfg, nil
}

// Insert creates a new, inactive config record.
func Insert(db *gorm.DB, cfg *models.TacacsConfig) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if cfg.Filename == "" {
		return nil, ErrFilenameEmpty
	}

	var existing models.TacacsConfig
	result := db.Where(filenameQueryPattern, cfg.Filename).First(&existing)
	if result.Error == nil {
		return nil, ErrConfigAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	cfg.Active = false
	result = db.Create(cfg)
	if result.Error != nil {
		return nil, result.Error
	}

	return cfg, nil
}

// SetActive marks the config with the given ID active and every other
// config inactive, in one transaction. This is the only write path for the
// Active column, which keeps the single-active invariant in one place.
func SetActive(db *gorm.DB, id uint64) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cfg models.TacacsConfig

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cfg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConfigNotFound
			}
			return err
		}

		if err := tx.Model(&models.TacacsConfig{}).
			Where("id <> ?", id).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}

		cfg.Active = true

		return tx.Save(&cfg).Error
	})
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// UpdateDescription updates the description of a config record.
func UpdateDescription(db *gorm.DB, id uint64, description string) (*models.TacacsConfig, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var cfg models.TacacsConfig
	result := db.First(&cfg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, result.Error
	}

	cfg.Description = description
	result = db.Save(&cfg)
	if result.Error != nil {
		return nil, result.Error
	}

	return &cfg, nil
}

// Delete deletes a config record by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.TacacsConfig{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
