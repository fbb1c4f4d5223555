// Package mavis verifies that the LDAP backend the mavis bridge script
// talks to is reachable with the stored connection settings. The daemon
// itself resolves passwords through the bridge; this package only answers
// "would that bridge be able to bind right now".
package mavis

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/mavissetting"
)

// Environment keys consumed by the mavis LDAP bridge script. The same keys
// are rendered as setenv lines into the generated configuration.
const (
	KeyHosts    = "LDAP_HOSTS"
	KeyUser     = "LDAP_USER"
	KeyPassword = "LDAP_PASSWD"
	KeyBase     = "LDAP_BASE"
)

const dialTimeout = 10 * time.Second

// ErrNoHosts is returned when no LDAP_HOSTS setting is stored.
var ErrNoHosts = errors.New("no LDAP hosts configured")

// Settings is the LDAP connection part of the stored mavis settings.
type Settings struct {
	// Hosts are the LDAP server URLs, split from the space-separated
	// LDAP_HOSTS value. Bare host[:port] entries are treated as ldap://.
	Hosts    []string
	BindDN   string
	Password string
	BaseDN   string
}

// HostResult is the connectivity outcome for a single LDAP host.
type HostResult struct {
	Host   string `json:"host"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// LoadSettings reads the LDAP connection settings from the store.
func LoadSettings(db *gorm.DB) (*Settings, error) {
	stored, err := mavissetting.GetAll(db)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(stored))
	for _, setting := range stored {
		values[setting.Key] = setting.Value
	}

	settings := &Settings{
		Hosts:    splitHosts(values[KeyHosts]),
		BindDN:   values[KeyUser],
		Password: values[KeyPassword],
		BaseDN:   values[KeyBase],
	}

	if len(settings.Hosts) == 0 {
		return nil, ErrNoHosts
	}

	return settings, nil
}

// Check dials and binds every configured LDAP host. A host failure does not
// abort the remaining hosts; the caller gets one result per host.
func Check(ctx context.Context, settings *Settings) []HostResult {
	results := make([]HostResult, 0, len(settings.Hosts))

	for _, host := range settings.Hosts {
		result := HostResult{Host: host, OK: true}

		if err := checkHost(ctx, host, settings); err != nil {
			result.OK = false
			result.Detail = err.Error()

			log.Warn().Str("host", host).Err(err).Msg("ldap connectivity check failed")
		}

		results = append(results, result)
	}

	return results
}

func checkHost(ctx context.Context, host string, settings *Settings) error {
	url := normalizeURL(host)

	var tlsConfig *tls.Config
	if strings.HasPrefix(url, "ldaps://") {
		tlsConfig = &tls.Config{ServerName: hostName(url)}
	}

	conn, err := ldap.DialURL(url, ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return err
	}

	defer func() {
		if errClose := conn.Close(); errClose != nil {
			log.Warn().Err(errClose).Msg("failed to close LDAP connection")
		}
	}()

	conn.SetTimeout(dialTimeout)
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetTimeout(time.Until(deadline))
	}

	if settings.BindDN == "" {
		return conn.UnauthenticatedBind("")
	}

	return conn.Bind(settings.BindDN, settings.Password)
}

// splitHosts splits the space-separated LDAP_HOSTS value, the format the
// bridge script expects.
func splitHosts(value string) []string {
	return strings.Fields(value)
}

// normalizeURL turns a bare host[:port] entry into an ldap:// URL.
func normalizeURL(host string) string {
	if strings.Contains(host, "://") {
		return host
	}

	return "ldap://" + host
}

func hostName(url string) string {
	trimmed := url[strings.Index(url, "://")+3:]
	if idx := strings.IndexByte(trimmed, ':'); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return trimmed
}
