// Package profile provides CRUD operations for authorization profiles and
// their script hierarchy (Profile -> ProfileScript -> ProfileScriptSet).
//
// Deleting a parent removes its children with an explicit recursive delete
// inside one transaction; the foreign key cascade on the schema is only a
// backstop for out-of-band writes.
package profile

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileNameEmpty is returned when attempting to create/update a profile with an empty name.
	ErrProfileNameEmpty = errors.New("profile name cannot be empty")
	// ErrProfileAlreadyExists is returned when attempting to create a profile that already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrScriptNotFound is returned when a profile script is not found.
	ErrScriptNotFound = errors.New("profile script not found")
	// ErrScriptSetNotFound is returned when a profile script set is not found.
	ErrScriptSetNotFound = errors.New("profile script set not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a profile by its name.
func Get(db *gorm.DB, name string) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrProfileNameEmpty
	}

	var profile models.Profile
	result := db.Where(nameQueryPattern, name).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

// GetByID retrieves a profile by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var profile models.Profile
	result := db.First(&profile, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	return &profile, nil
}

// GetAll retrieves all profiles in insertion order.
func GetAll(db *gorm.DB) ([]models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var profiles []models.Profile
	result := db.Order("id").Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

// Create creates a new profile in the database.
func Create(db *gorm.DB, profile *models.Profile) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if profile.Name == "" {
		return nil, ErrProfileNameEmpty
	}

	var existing models.Profile
	result := db.Where(nameQueryPattern, profile.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrProfileAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(profile)
	if result.Error != nil {
		return nil, result.Error
	}

	return profile, nil
}

// Update updates an existing profile by ID. Scripts are not touched.
func Update(db *gorm.DB, id uint64, profile *models.Profile) (*models.Profile, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Profile
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, result.Error
	}

	existing.Name = profile.Name
	existing.Action = profile.Action
	existing.Description = profile.Description
	result = db.Save(&existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return &existing, nil
}

// Delete removes a profile and, recursively, all its scripts and script
// sets in one transaction.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		scripts, err := Scripts(tx, id)
		if err != nil {
			return err
		}

		for _, script := range scripts {
			if err := deleteScriptTree(tx, script.ID); err != nil {
				return err
			}
		}

		return tx.Delete(&models.Profile{}, id).Error
	})
}

// Scripts retrieves the scripts of a profile in insertion order.
func Scripts(db *gorm.DB, profileID uint64) ([]models.ProfileScript, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var scripts []models.ProfileScript
	result := db.Where("profile_id = ?", profileID).Order("id").Find(&scripts)
	if result.Error != nil {
		return nil, result.Error
	}

	return scripts, nil
}

// ScriptSets retrieves the set assignments of a script in insertion order.
func ScriptSets(db *gorm.DB, scriptID uint64) ([]models.ProfileScriptSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sets []models.ProfileScriptSet
	result := db.Where("profile_script_id = ?", scriptID).Order("id").Find(&sets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sets, nil
}

// CreateScript adds a script to an existing profile.
func CreateScript(db *gorm.DB, script *models.ProfileScript) (*models.ProfileScript, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetByID(db, script.ProfileID); err != nil {
		return nil, err
	}

	result := db.Create(script)
	if result.Error != nil {
		return nil, result.Error
	}

	return script, nil
}

// CreateScriptSet adds a set assignment to an existing script.
func CreateScriptSet(db *gorm.DB, set *models.ProfileScriptSet) (*models.ProfileScriptSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var script models.ProfileScript
	if err := db.First(&script, set.ProfileScriptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, err
	}

	result := db.Create(set)
	if result.Error != nil {
		return nil, result.Error
	}

	return set, nil
}

// DeleteScript removes a script and its set assignments.
func DeleteScript(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var script models.ProfileScript
		if err := tx.First(&script, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrScriptNotFound
			}
			return err
		}

		return deleteScriptTree(tx, id)
	})
}

// DeleteScriptSet removes a single set assignment.
func DeleteScriptSet(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ProfileScriptSet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScriptSetNotFound
	}

	return nil
}

func deleteScriptTree(tx *gorm.DB, scriptID uint64) error {
	if err := tx.Where("profile_script_id = ?", scriptID).
		Delete(&models.ProfileScriptSet{}).Error; err != nil {
		return err
	}

	return tx.Delete(&models.ProfileScript{}, scriptID).Error
}
