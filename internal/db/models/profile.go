package models

import "time"

// Profile represents a named authorization policy. A profile owns an ordered
// list of scripts; a profile without any script (or whose scripts all have
// empty set lists) is not rendered into the configuration.
type Profile struct {
	// ID is the unique identifier for the profile.
	ID uint64 `gorm:"primaryKey"`
	// Name is the unique profile name referenced from ruleset scripts.
	Name string `gorm:"unique;size:255;not null"`
	// Action is the default action at the end of the script block
	// ("permit" or "deny").
	Action string `gorm:"size:255;not null"`
	// Description is free-form administrative text.
	Description string
	// Scripts are the ordered script blocks of this profile.
	Scripts []ProfileScript `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the profile was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the profile was last updated (managed by GORM).
	UpdatedAt time.Time
}

// ProfileScript is one conditional block inside a profile script. It matches
// a key against a value (e.g. service==shell) and applies its ordered set
// assignments followed by its action.
type ProfileScript struct {
	ID          uint64 `gorm:"primaryKey"`
	ProfileID   uint64 `gorm:"not null;index"`
	Condition   string `gorm:"size:255;not null"`
	Key         string `gorm:"size:255;not null"`
	Value       string `gorm:"size:255;not null"`
	Action      string `gorm:"size:255;not null"`
	Description string
	// Sets are the ordered attribute assignments of this script. A script
	// without sets is not rendered.
	Sets      []ProfileScriptSet `gorm:"foreignKey:ProfileScriptID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileScriptSet is one attribute assignment ("set key=value") inside a
// profile script block.
type ProfileScriptSet struct {
	ID              uint64 `gorm:"primaryKey"`
	ProfileScriptID uint64 `gorm:"not null;index"`
	Key             string `gorm:"size:255;not null"`
	Value           string `gorm:"not null"`
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
