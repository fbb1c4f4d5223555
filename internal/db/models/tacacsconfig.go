package models

import "time"

// TacacsConfig is a compiled configuration artifact record. The artifact
// text itself lives on disk as <filename>.cfg; the row tracks metadata and
// the activation state. At most one row has Active set.
type TacacsConfig struct {
	// ID is the unique identifier for the config record.
	ID uint64 `gorm:"primaryKey"`
	// Filename is the artifact name without the .cfg suffix. It is
	// validated against a strict character set before the row is created.
	Filename string `gorm:"unique;size:30;not null"`
	// Description is free-form administrative text, included in the
	// provenance header when the config is activated.
	Description string
	// Active marks the one config currently promoted to the live file.
	Active bool `gorm:"default:false"`
	// CreatedAt is the timestamp when the config was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the config was last updated (managed by GORM).
	UpdatedAt time.Time
}
