package models

import "time"

// ConfigurationOption is a free-form text block injected verbatim before the
// generated entries of the section whose name matches ("host", "group",
// "user", ...). It is the escape hatch for daemon features the entity model
// does not cover.
type ConfigurationOption struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"unique;size:255;not null"`
	ConfigOption string `gorm:"not null"`
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
