// Package ruleset provides CRUD operations for rulesets and their script
// hierarchy (Ruleset -> RulesetScript -> RulesetScriptSet). Parent deletion
// removes children with an explicit recursive delete inside one transaction.
package ruleset

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const nameQueryPattern = "name = ?"

var (
	// ErrRulesetNotFound is returned when a ruleset is not found.
	ErrRulesetNotFound = errors.New("ruleset not found")
	// ErrRulesetNameEmpty is returned when attempting to create/update a ruleset with an empty name.
	ErrRulesetNameEmpty = errors.New("ruleset name cannot be empty")
	// ErrRulesetAlreadyExists is returned when attempting to create a ruleset that already exists.
	ErrRulesetAlreadyExists = errors.New("ruleset already exists")
	// ErrScriptNotFound is returned when a ruleset script is not found.
	ErrScriptNotFound = errors.New("ruleset script not found")
	// ErrScriptSetNotFound is returned when a ruleset script set is not found.
	ErrScriptSetNotFound = errors.New("ruleset script set not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a ruleset by its name.
func Get(db *gorm.DB, name string) (*models.Ruleset, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrRulesetNameEmpty
	}

	var ruleset models.Ruleset
	result := db.Where(nameQueryPattern, name).First(&ruleset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRulesetNotFound
		}
		return nil, result.Error
	}

	return &ruleset, nil
}

// GetByID retrieves a ruleset by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Ruleset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var ruleset models.Ruleset
	result := db.First(&ruleset, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRulesetNotFound
		}
		return nil, result.Error
	}

	return &ruleset, nil
}

// GetAll retrieves all rulesets in insertion order.
func GetAll(db *gorm.DB) ([]models.Ruleset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rulesets []models.Ruleset
	result := db.Order("id").Find(&rulesets)
	if result.Error != nil {
		return nil, result.Error
	}

	return rulesets, nil
}

// Create creates a new ruleset in the database.
func Create(db *gorm.DB, ruleset *models.Ruleset) (*models.Ruleset, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if ruleset.Name == "" {
		return nil, ErrRulesetNameEmpty
	}

	var existing models.Ruleset
	result := db.Where(nameQueryPattern, ruleset.Name).First(&existing)
	if result.Error == nil {
		return nil, ErrRulesetAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	if ruleset.Enabled == "" {
		ruleset.Enabled = "yes"
	}

	result = db.Create(ruleset)
	if result.Error != nil {
		return nil, result.Error
	}

	return ruleset, nil
}

// Update updates an existing ruleset by ID. Scripts are not touched.
func Update(db *gorm.DB, id uint64, ruleset *models.Ruleset) (*models.Ruleset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Ruleset
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRulesetNotFound
		}
		return nil, result.Error
	}

	existing.Name = ruleset.Name
	existing.Enabled = ruleset.Enabled
	existing.Action = ruleset.Action
	existing.Description = ruleset.Description
	result = db.Save(&existing)
	if result.Error != nil {
		return nil, result.Error
	}

	return &existing, nil
}

// Delete removes a ruleset and, recursively, all its scripts and script
// sets in one transaction.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var ruleset models.Ruleset
		if err := tx.First(&ruleset, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRulesetNotFound
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

		return tx.Delete(&models.Ruleset{}, id).Error
	})
}

// Scripts retrieves the scripts of a ruleset in insertion order.
func Scripts(db *gorm.DB, rulesetID uint64) ([]models.RulesetScript, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var scripts []models.RulesetScript
	result := db.Where("ruleset_id = ?", rulesetID).Order("id").Find(&scripts)
	if result.Error != nil {
		return nil, result.Error
	}

	return scripts, nil
}

// ScriptSets retrieves the set assignments of a script in insertion order.
func ScriptSets(db *gorm.DB, scriptID uint64) ([]models.RulesetScriptSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sets []models.RulesetScriptSet
	result := db.Where("ruleset_script_id = ?", scriptID).Order("id").Find(&sets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sets, nil
}

// CreateScript adds a script to an existing ruleset.
func CreateScript(db *gorm.DB, script *models.RulesetScript) (*models.RulesetScript, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetByID(db, script.RulesetID); err != nil {
		return nil, err
	}

	result := db.Create(script)
	if result.Error != nil {
		return nil, result.Error
	}

	return script, nil
}

// CreateScriptSet adds a set assignment to an existing script.
func CreateScriptSet(db *gorm.DB, set *models.RulesetScriptSet) (*models.RulesetScriptSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var script models.RulesetScript
	if err := db.First(&script, set.RulesetScriptID).Error; err != nil {
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
		var script models.RulesetScript
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

	result := db.Delete(&models.RulesetScriptSet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScriptSetNotFound
	}

	return nil
}

func deleteScriptTree(tx *gorm.DB, scriptID uint64) error {
	if err := tx.Where("ruleset_script_id = ?", scriptID).
		Delete(&models.RulesetScriptSet{}).Error; err != nil {
		return err
	}

	return tx.Delete(&models.RulesetScript{}, scriptID).Error
}
