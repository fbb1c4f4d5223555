package models

import "time"

// PasswordType selects how a user's login password is verified by the daemon.
type PasswordType string

const (
	// PasswordTypeClear stores the password in clear text in the configuration.
	PasswordTypeClear PasswordType = "clear"
	// PasswordTypeMavis delegates password verification to the mavis backend.
	PasswordTypeMavis PasswordType = "mavis"
)

// TacacsUser represents a user account known to the TACACS+ daemon.
type TacacsUser struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Username is the unique login name.
	Username string `gorm:"unique;size:255;not null"`
	// PasswordType selects the password verification method ("clear",
	// "mavis", "crypt", ...). With "mavis" no password is stored here.
	PasswordType PasswordType `gorm:"type:varchar(20);not null"`
	// Password is the stored password, unused when PasswordType is "mavis".
	Password *string `gorm:"size:255"`
	// Member is the name of the group this user belongs to.
	Member string `gorm:"size:255;not null"`
	// Description is free-form administrative text.
	Description string
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}
