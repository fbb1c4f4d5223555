package models

import "time"

// Ruleset represents one named rule inside the top-level ruleset block. Its
// scripts conceptually match a group and assign a profile. The same
// suppression rule as for profiles applies: a ruleset without scripts, or
// whose scripts all have empty set lists, is not rendered.
type Ruleset struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"unique;size:255;not null"`
	// Enabled is rendered verbatim as "enabled=<value>" in the rule block.
	Enabled string `gorm:"size:10;not null;default:'yes'"`
	// Action is the default action at the end of the rule's script block.
	Action      string `gorm:"size:255;not null"`
	Description string
	Scripts     []RulesetScript `gorm:"foreignKey:RulesetID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RulesetScript is one conditional block inside a rule script, typically
// matching a group membership (e.g. "if (member == admins)").
type RulesetScript struct {
	ID          uint64 `gorm:"primaryKey"`
	RulesetID   uint64 `gorm:"not null;index"`
	Condition   string `gorm:"size:255;not null"`
	Key         string `gorm:"size:255;not null"`
	Value       string `gorm:"size:255;not null"`
	Action      string `gorm:"size:255;not null"`
	Description string
	Sets        []RulesetScriptSet `gorm:"foreignKey:RulesetScriptID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RulesetScriptSet is one assignment inside a rule script block, typically
// selecting a profile ("profile = netadmin").
type RulesetScriptSet struct {
	ID              uint64 `gorm:"primaryKey"`
	RulesetScriptID uint64 `gorm:"not null;index"`
	Key             string `gorm:"size:255;not null"`
	Value           string `gorm:"size:255;not null"`
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
