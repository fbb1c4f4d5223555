// Package tacacsgroup provides CRUD operations for managing TACACS+ groups.
package tacacsgroup

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const (
	nameQueryPattern = "group_name = ?"
)

var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrGroupNameEmpty is returned when attempting to create/update a group with an empty name.
	ErrGroupNameEmpty = errors.New("group name cannot be empty")
	// ErrGroupAlreadyExists is returned when attempting to create a group that already exists.
	ErrGroupAlreadyExists = errors.New("group already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a group by its name.
func Get(db *gorm.DB, name string) (*models.TacacsGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrGroupNameEmpty
	}

	var group models.TacacsGroup
	result := db.Where(nameQueryPattern, name).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	return &group, nil
}

// GetByID retrieves a group by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.TacacsGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var group models.TacacsGroup
	result := db.First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	return &group, nil
}

// GetAll retrieves all groups in insertion order.
func GetAll(db *gorm.DB) ([]models.TacacsGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var groups []models.TacacsGroup
	result := db.Order("id").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

// Create creates a new group in the database.
func Create(db *gorm.DB, group *models.TacacsGroup) (*models.TacacsGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if group.GroupName == "" {
		return nil, ErrGroupNameEmpty
	}

	var existing models.TacacsGroup
	result := db.Where(nameQueryPattern, group.GroupName).First(&existing)
	if result.Error == nil {
		return nil, ErrGroupAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(group)
	if result.Error != nil {
		return nil, result.Error
	}

	return group, nil
}

// Update updates an existing group by ID.
func Update(db *gorm.DB, id uint64, group *models.TacacsGroup) (*models.TacacsGroup, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.TacacsGroup
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, result.Error
	}

	group.ID = existing.ID
	group.CreatedAt = existing.CreatedAt
	result = db.Save(group)
	if result.Error != nil {
		return nil, result.Error
	}

	return group, nil
}

// Delete deletes a group by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.TacacsGroup{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}
