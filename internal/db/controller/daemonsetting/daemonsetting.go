// Package daemonsetting manages the single tac_plus-ng listener settings row.
package daemonsetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

var (
	// ErrSettingNotFound is returned when no settings row exists.
	ErrSettingNotFound = errors.New("daemon setting not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the daemon settings row.
func Get(db *gorm.DB) (*models.DaemonSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var setting models.DaemonSetting
	result := db.Order("id").First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &setting, nil
}

// Update overwrites the daemon settings row.
func Update(db *gorm.DB, setting *models.DaemonSetting) (*models.DaemonSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	existing, err := Get(db)
	if err != nil {
		return nil, err
	}

	setting.ID = existing.ID
	setting.CreatedAt = existing.CreatedAt
	result := db.Save(setting)
	if result.Error != nil {
		return nil, result.Error
	}

	return setting, nil
}

// Seed inserts a default settings row when none exists. The log destination
// defaults use tac_plus-ng's strftime-style date expansion.
func Seed(db *gorm.DB, logDir string) error {
	if db == nil {
		return ErrDBNil
	}

	var count int64
	if err := db.Model(&models.DaemonSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	setting := &models.DaemonSetting{
		IPv4Enabled:                  true,
		IPv4Address:                  "0.0.0.0",
		IPv4Port:                     49,
		IPv6Address:                  "::",
		IPv6Port:                     49,
		InstancesMin:                 1,
		InstancesMax:                 10,
		AccessLogDestination:         logDir + "%Y/%m/access-%Y-%m-%d.log",
		AuthenticationLogDestination: logDir + "%Y/%m/authentication-%Y-%m-%d.log",
		AuthorizationLogDestination:  logDir + "%Y/%m/authorization-%Y-%m-%d.log",
		AccountingLogDestination:     logDir + "%Y/%m/accounting-%Y-%m-%d.log",
		LoginBackend:                 "mavis",
		UserBackend:                  "mavis",
		PapBackend:                   "mavis",
	}

	return db.Create(setting).Error
}
