package tacacs

import (
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/configoption"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/daemonsetting"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/host"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/mavissetting"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/profile"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/ruleset"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsgroup"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsuser"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

// ProfileScriptEntry is a profile script with its ordered set assignments.
type ProfileScriptEntry struct {
	Script models.ProfileScript
	Sets   []models.ProfileScriptSet
}

// ProfileEntry is a profile with its ordered scripts.
type ProfileEntry struct {
	Profile models.Profile
	Scripts []ProfileScriptEntry
}

// RulesetScriptEntry is a ruleset script with its ordered set assignments.
type RulesetScriptEntry struct {
	Script models.RulesetScript
	Sets   []models.RulesetScriptSet
}

// RulesetEntry is a ruleset with its ordered scripts.
type RulesetEntry struct {
	Ruleset models.Ruleset
	Scripts []RulesetScriptEntry
}

// Snapshot is a point-in-time copy of every entity the compiler reads. All
// slices are in store (insertion) order; the compiler depends on that order
// being preserved.
type Snapshot struct {
	Setting       models.DaemonSetting
	MavisSettings []models.MavisSetting
	Hosts         []models.Host
	Groups        []models.TacacsGroup
	Users         []models.TacacsUser
	Profiles      []ProfileEntry
	Rulesets      []RulesetEntry

	// Options maps a section name ("host", "group", "user", ...) to the
	// free-form text injected before that section's generated entries.
	Options map[string]string
}

// LoadSnapshot reads all compiler inputs from the store.
func LoadSnapshot(db *gorm.DB) (*Snapshot, error) {
	setting, err := daemonsetting.Get(db)
	if err != nil {
		return nil, err
	}

	mavisSettings, err := mavissetting.GetAll(db)
	if err != nil {
		return nil, err
	}

	hosts, err := host.GetAll(db)
	if err != nil {
		return nil, err
	}

	groups, err := tacacsgroup.GetAll(db)
	if err != nil {
		return nil, err
	}

	users, err := tacacsuser.GetAll(db)
	if err != nil {
		return nil, err
	}

	options, err := configoption.GetAll(db)
	if err != nil {
		return nil, err
	}

	optionMap := make(map[string]string, len(options))
	for _, option := range options {
		optionMap[option.Name] = option.ConfigOption
	}

	profiles, err := loadProfiles(db)
	if err != nil {
		return nil, err
	}

	rulesets, err := loadRulesets(db)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Setting:       *setting,
		MavisSettings: mavisSettings,
		Hosts:         hosts,
		Groups:        groups,
		Users:         users,
		Profiles:      profiles,
		Rulesets:      rulesets,
		Options:       optionMap,
	}, nil
}

func loadProfiles(db *gorm.DB) ([]ProfileEntry, error) {
	profiles, err := profile.GetAll(db)
	if err != nil {
		return nil, err
	}

	entries := make([]ProfileEntry, 0, len(profiles))

	for _, p := range profiles {
		scripts, err := profile.Scripts(db, p.ID)
		if err != nil {
			return nil, err
		}

		entry := ProfileEntry{Profile: p}
		for _, script := range scripts {
			sets, err := profile.ScriptSets(db, script.ID)
			if err != nil {
				return nil, err
			}

			entry.Scripts = append(entry.Scripts, ProfileScriptEntry{Script: script, Sets: sets})
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func loadRulesets(db *gorm.DB) ([]RulesetEntry, error) {
	rulesets, err := ruleset.GetAll(db)
	if err != nil {
		return nil, err
	}

	entries := make([]RulesetEntry, 0, len(rulesets))

	for _, r := range rulesets {
		scripts, err := ruleset.Scripts(db, r.ID)
		if err != nil {
			return nil, err
		}

		entry := RulesetEntry{Ruleset: r}
		for _, script := range scripts {
			sets, err := ruleset.ScriptSets(db, script.ID)
			if err != nil {
				return nil, err
			}

			entry.Scripts = append(entry.Scripts, RulesetScriptEntry{Script: script, Sets: sets})
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
