package models

import "time"

// TacacsGroup represents a group users can be a member of. Groups are
// rendered as bare "group = <name>" lines and matched by ruleset scripts.
type TacacsGroup struct {
	ID          uint64 `gorm:"primaryKey"`
	GroupName   string `gorm:"unique;size:255;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
