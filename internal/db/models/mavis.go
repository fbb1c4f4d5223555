// Package models contains database model definitions.
package models

import "time"

// MavisSetting represents one environment variable passed to the mavis
// external authentication module (the LDAP bridge). The stored order of the
// settings is the order in which they are rendered into the mavis block.
type MavisSetting struct {
	ID        uint64 `gorm:"primaryKey"`
	Key       string `gorm:"column:mavis_key;unique;size:255;not null"`
	Value     string `gorm:"column:mavis_value;size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
