package tacacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

func testTacacsConfig() config.Tacacs {
	return config.Tacacs{
		BaseDir:       "/app/tacacs_config",
		BinaryPath:    "/usr/local/sbin/tac_plus-ng",
		MavisExecPath: "/usr/local/lib/mavis/mavis_tacplus-ng_ldap.pl",
	}
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		Setting: models.DaemonSetting{
			IPv4Address:                  "0.0.0.0",
			IPv4Port:                     49,
			InstancesMin:                 1,
			InstancesMax:                 10,
			AccessLogDestination:         "/var/log/tac_plus-ng/access.log",
			AuthenticationLogDestination: "/var/log/tac_plus-ng/authentication.log",
			AuthorizationLogDestination:  "/var/log/tac_plus-ng/authorization.log",
			AccountingLogDestination:     "/var/log/tac_plus-ng/accounting.log",
			LoginBackend:                 "mavis",
			UserBackend:                  "mavis",
			PapBackend:                   "mavis",
		},
		Options: map[string]string{},
	}
}

func TestCompileSpawnd(t *testing.T) {
	testCases := []struct {
		name       string
		background bool
		expected   string
	}{
		{name: "foreground", background: false, expected: "background = no"},
		{name: "background", background: true, expected: "background = yes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Setting.Background = tc.background

			out := Render(Compile(snap, testTacacsConfig()))
			assert.Contains(t, out, "id = spawnd {")
			assert.Contains(t, out, "address = 0.0.0.0")
			assert.Contains(t, out, "port = 49")
			assert.Contains(t, out, "instances min = 1")
			assert.Contains(t, out, "instances max = 10")
			assert.Contains(t, out, tc.expected)
		})
	}
}

func TestCompileMavis(t *testing.T) {
	snap := testSnapshot()
	snap.MavisSettings = []models.MavisSetting{
		{Key: "LDAP_HOSTS", Value: "ldap://10.0.0.5"},
		{Key: "LDAP_BASE", Value: "dc=example,dc=com"},
	}

	out := Render(Compile(snap, testTacacsConfig()))

	assert.Contains(t, out, "mavis module = external {")
	assert.Contains(t, out, `setenv LDAP_HOSTS="ldap://10.0.0.5"`)
	assert.Contains(t, out, `setenv LDAP_BASE="dc=example,dc=com"`)
	assert.Contains(t, out, "exec = /usr/local/lib/mavis/mavis_tacplus-ng_ldap.pl")

	// setenv lines keep the stored order
	hosts := strings.Index(out, "LDAP_HOSTS")
	base := strings.Index(out, "LDAP_BASE")
	assert.Less(t, hosts, base)
}

func TestCompileHosts(t *testing.T) {
	snap := testSnapshot()
	snap.Hosts = []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
	}

	out := Render(Compile(snap, testTacacsConfig()))

	assert.Contains(t, out, "host = edge1 {")
	assert.Contains(t, out, "address = 10.0.0.1/32")
	assert.Contains(t, out, `key = "s3cret"`)
}

func TestCompileHostsWithOption(t *testing.T) {
	snap := testSnapshot()
	snap.Options["host"] = "dns reverse-lookup = no"
	snap.Hosts = []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "s3cret"},
	}

	out := Render(Compile(snap, testTacacsConfig()))

	// option text comes before the generated host blocks
	option := strings.Index(out, "dns reverse-lookup = no")
	block := strings.Index(out, "host = edge1 {")
	require.GreaterOrEqual(t, option, 0)
	assert.Less(t, option, block)
}

func TestCompileGroups(t *testing.T) {
	snap := testSnapshot()
	snap.Groups = []models.TacacsGroup{
		{GroupName: "admins"},
		{GroupName: "operators"},
	}

	out := Render(Compile(snap, testTacacsConfig()))

	assert.Contains(t, out, "group = admins")
	assert.Contains(t, out, "group = operators")
}

func TestCompileUsers(t *testing.T) {
	clear := "secret"

	testCases := []struct {
		name     string
		user     models.TacacsUser
		expected string
	}{
		{
			name:     "mavis backed user",
			user:     models.TacacsUser{Username: "alice", PasswordType: models.PasswordTypeMavis, Member: "admins"},
			expected: "password login = mavis",
		},
		{
			name:     "clear password user",
			user:     models.TacacsUser{Username: "bob", PasswordType: models.PasswordTypeClear, Password: &clear, Member: "operators"},
			expected: "password login = clear secret",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Users = []models.TacacsUser{tc.user}

			out := Render(Compile(snap, testTacacsConfig()))
			assert.Contains(t, out, "user "+tc.user.Username+" {")
			assert.Contains(t, out, tc.expected)
			assert.Contains(t, out, "member = "+tc.user.Member)
		})
	}
}

func TestCompileProfilesSuppression(t *testing.T) {
	script := ProfileScriptEntry{
		Script: models.ProfileScript{Condition: "if", Key: "service", Value: "shell", Action: "permit"},
		Sets:   []models.ProfileScriptSet{{Key: "priv-lvl", Value: "15"}},
	}
	emptyScript := ProfileScriptEntry{
		Script: models.ProfileScript{Condition: "if", Key: "service", Value: "shell", Action: "permit"},
	}

	testCases := []struct {
		name     string
		profiles []ProfileEntry
		rendered bool
	}{
		{
			name:     "profile without scripts is suppressed",
			profiles: []ProfileEntry{{Profile: models.Profile{Name: "netadmin", Action: "permit"}}},
			rendered: false,
		},
		{
			name: "profile whose scripts all lack sets is suppressed",
			profiles: []ProfileEntry{{
				Profile: models.Profile{Name: "netadmin", Action: "permit"},
				Scripts: []ProfileScriptEntry{emptyScript},
			}},
			rendered: false,
		},
		{
			name: "profile with one populated script is rendered",
			profiles: []ProfileEntry{{
				Profile: models.Profile{Name: "netadmin", Action: "permit"},
				Scripts: []ProfileScriptEntry{script},
			}},
			rendered: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Profiles = tc.profiles

			out := Render(Compile(snap, testTacacsConfig()))
			if tc.rendered {
				assert.Contains(t, out, "profile netadmin {")
				assert.Contains(t, out, "if (service==shell) {")
				assert.Contains(t, out, "set priv-lvl=15")
			} else {
				assert.NotContains(t, out, "profile netadmin")
			}
		})
	}
}

func TestCompileProfileScriptSuppression(t *testing.T) {
	snap := testSnapshot()
	snap.Profiles = []ProfileEntry{{
		Profile: models.Profile{Name: "netadmin", Action: "permit"},
		Scripts: []ProfileScriptEntry{
			{
				Script: models.ProfileScript{Condition: "if", Key: "service", Value: "shell", Action: "permit"},
				Sets:   []models.ProfileScriptSet{{Key: "priv-lvl", Value: "15"}},
			},
			{
				// no sets, must not appear
				Script: models.ProfileScript{Condition: "if", Key: "cmd", Value: "reload", Action: "deny"},
			},
		},
	}}

	out := Render(Compile(snap, testTacacsConfig()))

	assert.Contains(t, out, "if (service==shell) {")
	assert.NotContains(t, out, "cmd==reload")
}

func TestCompileRulesets(t *testing.T) {
	snap := testSnapshot()
	snap.Rulesets = []RulesetEntry{{
		Ruleset: models.Ruleset{Name: "net-access", Enabled: "yes", Action: "deny"},
		Scripts: []RulesetScriptEntry{{
			Script: models.RulesetScript{Condition: "if", Key: "member", Value: "admins", Action: "permit"},
			Sets:   []models.RulesetScriptSet{{Key: "profile", Value: "netadmin"}},
		}},
	}}

	out := Render(Compile(snap, testTacacsConfig()))

	assert.Contains(t, out, "ruleset {")
	assert.Contains(t, out, "rule net-access {")
	assert.Contains(t, out, "enabled=yes")
	assert.Contains(t, out, "if (member==admins) {")
	assert.Contains(t, out, "profile=netadmin")
}

func TestCompileRulesetsAllSuppressed(t *testing.T) {
	snap := testSnapshot()
	snap.Rulesets = []RulesetEntry{
		{Ruleset: models.Ruleset{Name: "empty", Enabled: "yes", Action: "deny"}},
		{
			Ruleset: models.Ruleset{Name: "hollow", Enabled: "yes", Action: "deny"},
			Scripts: []RulesetScriptEntry{{
				Script: models.RulesetScript{Condition: "if", Key: "member", Value: "admins", Action: "permit"},
			}},
		},
	}

	out := Render(Compile(snap, testTacacsConfig()))

	// no rule survives suppression, so no aggregate block appears
	assert.NotContains(t, out, "ruleset {")
}

func TestCompileBackendPragmas(t *testing.T) {
	out := Render(Compile(testSnapshot(), testTacacsConfig()))

	assert.Contains(t, out, "login backend = mavis")
	assert.Contains(t, out, "user backend = mavis")
	assert.Contains(t, out, "pap backend = mavis")
	assert.Contains(t, out, "log accesslog {")
	assert.Contains(t, out, "access log = accesslog")
	assert.Contains(t, out, "accounting log = accountinglog")
}

func TestCompileIsDeterministic(t *testing.T) {
	snap := testSnapshot()
	snap.Hosts = []models.Host{
		{Name: "edge1", IPv4Address: "10.0.0.1/32", SecretKey: "a"},
		{Name: "edge2", IPv4Address: "10.0.0.2/32", SecretKey: "b"},
	}
	snap.Groups = []models.TacacsGroup{{GroupName: "admins"}}

	first := Render(Compile(snap, testTacacsConfig()))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(Compile(snap, testTacacsConfig())))
	}

	// entities appear in store order
	assert.Less(t, strings.Index(first, "host = edge1"), strings.Index(first, "host = edge2"))
}
