package tacacs

import (
	"fmt"
	"strconv"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

// Compile turns an entity snapshot into the configuration block tree. It is
// a pure function: the same snapshot and settings always produce the same
// tree, and rendering the tree always produces the same text.
func Compile(snap *Snapshot, cfg config.Tacacs) []Node {
	daemon := NewBlock("id = " + config.LiveConfigName)

	daemon.Add(compileLogs(snap.Setting)...)
	daemon.Add(compileMavis(snap.MavisSettings, cfg.MavisExecPath))
	daemon.Add(
		Pair{Key: "login backend", Value: snap.Setting.LoginBackend},
		Pair{Key: "user backend", Value: snap.Setting.UserBackend},
		Pair{Key: "pap backend", Value: snap.Setting.PapBackend},
	)
	daemon.Add(compileHosts(snap.Hosts, snap.Options["host"])...)
	daemon.Add(compileGroups(snap.Groups, snap.Options["group"])...)
	daemon.Add(compileUsers(snap.Users, snap.Options["user"])...)
	daemon.Add(compileProfiles(snap.Profiles)...)

	if rules := compileRulesets(snap.Rulesets); rules != nil {
		daemon.Add(rules)
	}

	return []Node{
		compileSpawnd(snap.Setting),
		daemon,
	}
}

// compileSpawnd builds the listener block. Only the IPv4 listener is
// rendered; the stored IPv6 settings are currently ignored because the
// managed daemon deployment listens on IPv4 only.
func compileSpawnd(setting models.DaemonSetting) *Block {
	background := "no"
	if setting.Background {
		background = "yes"
	}

	return NewBlock("id = spawnd").Add(
		NewBlock("listen =").Add(
			Pair{Key: "address", Value: setting.IPv4Address},
			Pair{Key: "port", Value: strconv.Itoa(setting.IPv4Port)},
		),
		NewBlock("spawn =").Add(
			Pair{Key: "instances min", Value: strconv.Itoa(setting.InstancesMin)},
			Pair{Key: "instances max", Value: strconv.Itoa(setting.InstancesMax)},
		),
		Pair{Key: "background", Value: background},
	)
}

func compileLogs(setting models.DaemonSetting) []Node {
	return []Node{
		NewBlock("log accesslog").Add(Pair{Key: "destination", Value: setting.AccessLogDestination}),
		NewBlock("log authenticationlog").Add(Pair{Key: "destination", Value: setting.AuthenticationLogDestination}),
		NewBlock("log authorizationlog").Add(Pair{Key: "destination", Value: setting.AuthorizationLogDestination}),
		NewBlock("log accountinglog").Add(Pair{Key: "destination", Value: setting.AccountingLogDestination}),
		Pair{Key: "access log", Value: "accesslog"},
		Pair{Key: "authentication log", Value: "authenticationlog"},
		Pair{Key: "authorization log", Value: "authorizationlog"},
		Pair{Key: "accounting log", Value: "accountinglog"},
	}
}

// RenderMavisBlock renders the mavis module block on its own, for previews.
func RenderMavisBlock(settings []models.MavisSetting, execPath string) string {
	return Render([]Node{compileMavis(settings, execPath)})
}

// compileMavis builds the external mavis module block. The setenv lines
// appear in the stored order of the settings.
func compileMavis(settings []models.MavisSetting, execPath string) *Block {
	block := NewBlock("mavis module = external")

	for _, setting := range settings {
		block.Add(Raw(fmt.Sprintf("setenv %s=%q", setting.Key, setting.Value)))
	}

	block.Add(Pair{Key: "exec", Value: execPath})

	return block
}

func compileHosts(hosts []models.Host, option string) []Node {
	var nodes []Node

	if option != "" {
		nodes = append(nodes, Raw(option))
	}

	for _, h := range hosts {
		nodes = append(nodes, NewBlock("host = "+h.Name).Add(
			Pair{Key: "address", Value: h.IPv4Address},
			Pair{Key: "key", Value: strconv.Quote(h.SecretKey)},
		))
	}

	return nodes
}

func compileGroups(groups []models.TacacsGroup, option string) []Node {
	var nodes []Node

	if option != "" {
		nodes = append(nodes, Raw(option))
	}

	for _, g := range groups {
		nodes = append(nodes, Pair{Key: "group", Value: g.GroupName})
	}

	return nodes
}

func compileUsers(users []models.TacacsUser, option string) []Node {
	var nodes []Node

	if option != "" {
		nodes = append(nodes, Raw(option))
	}

	for _, u := range users {
		block := NewBlock("user " + u.Username)

		if u.PasswordType == models.PasswordTypeMavis {
			block.Add(Pair{Key: "password login", Value: "mavis"})
		} else {
			password := ""
			if u.Password != nil {
				password = *u.Password
			}
			block.Add(Pair{Key: "password login", Value: string(u.PasswordType) + " " + password})
		}

		block.Add(Pair{Key: "member", Value: u.Member})
		nodes = append(nodes, block)
	}

	return nodes
}

// compileProfiles renders one profile block per profile that has at least
// one script with at least one set assignment. Empty profiles and empty
// scripts are suppressed entirely.
func compileProfiles(profiles []ProfileEntry) []Node {
	var nodes []Node

	for _, entry := range profiles {
		script := NewBlock("script")

		for _, se := range entry.Scripts {
			if len(se.Sets) == 0 {
				continue
			}

			match := NewBlock(conditionName(se.Script.Condition, se.Script.Key, se.Script.Value))
			for _, set := range se.Sets {
				match.Add(Raw(fmt.Sprintf("set %s=%s", set.Key, set.Value)))
			}
			match.Add(Raw(se.Script.Action))

			script.Add(match)
		}

		if script.Empty() {
			continue
		}

		script.Add(Raw(entry.Profile.Action))
		nodes = append(nodes, NewBlock("profile "+entry.Profile.Name).Add(script))
	}

	return nodes
}

// compileRulesets renders the aggregate ruleset block, applying the same
// suppression rule one level deeper. Returns nil when every rule is
// suppressed, so no empty aggregate block appears in the output.
func compileRulesets(rulesets []RulesetEntry) Node {
	aggregate := NewBlock("ruleset")

	for _, entry := range rulesets {
		script := NewBlock("script")

		for _, se := range entry.Scripts {
			if len(se.Sets) == 0 {
				continue
			}

			match := NewBlock(conditionName(se.Script.Condition, se.Script.Key, se.Script.Value))
			for _, set := range se.Sets {
				match.Add(Raw(fmt.Sprintf("%s=%s", set.Key, set.Value)))
			}
			match.Add(Raw(se.Script.Action))

			script.Add(match)
		}

		if script.Empty() {
			continue
		}

		script.Add(Raw(entry.Ruleset.Action))

		aggregate.Add(NewBlock("rule " + entry.Ruleset.Name).Add(
			Raw("enabled="+entry.Ruleset.Enabled),
			script,
		))
	}

	if aggregate.Empty() {
		return nil
	}

	return aggregate
}

func conditionName(condition, key, value string) string {
	return fmt.Sprintf("%s (%s==%s)", condition, key, value)
}
