// Package tacacsuser provides CRUD operations for managing TACACS+ users.
package tacacsuser

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const (
	nameQueryPattern = "username = ?"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameEmpty is returned when attempting to create/update a user with an empty username.
	ErrUsernameEmpty = errors.New("username cannot be empty")
	// ErrUserAlreadyExists is returned when attempting to create a user that already exists.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrPasswordRequired is returned when a non-mavis user is created without a password.
	ErrPasswordRequired = errors.New("password is required unless password type is mavis")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a user by username.
func Get(db *gorm.DB, username string) (*models.TacacsUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if username == "" {
		return nil, ErrUsernameEmpty
	}

	var user models.TacacsUser
	result := db.Where(nameQueryPattern, username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetByID retrieves a user by ID.
func GetByID(db *gorm.DB, id uint64) (*models.TacacsUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var user models.TacacsUser
	result := db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}

// GetAll retrieves all users in insertion order.
func GetAll(db *gorm.DB) ([]models.TacacsUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.TacacsUser
	result := db.Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Create creates a new user. Users whose password type is not "mavis" must
// carry a password.
func Create(db *gorm.DB, user *models.TacacsUser) (*models.TacacsUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if user.Username == "" {
		return nil, ErrUsernameEmpty
	}
	if user.PasswordType != models.PasswordTypeMavis && (user.Password == nil || *user.Password == "") {
		return nil, ErrPasswordRequired
	}

	var existing models.TacacsUser
	result := db.Where(nameQueryPattern, user.Username).First(&existing)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = db.Create(user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// Update updates an existing user by ID.
func Update(db *gorm.DB, id uint64, user *models.TacacsUser) (*models.TacacsUser, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if user.PasswordType != models.PasswordTypeMavis && (user.Password == nil || *user.Password == "") {
		return nil, ErrPasswordRequired
	}

	var existing models.TacacsUser
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	result = db.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// Delete deletes a user by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.TacacsUser{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
