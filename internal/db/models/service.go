package models

import "time"

// TacacsService represents a named service descriptor (e.g. "shell").
// Services are referenced by name inside profile and ruleset scripts, not
// by foreign key.
type TacacsService struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"unique;size:255;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
