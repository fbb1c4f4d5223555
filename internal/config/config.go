// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv("GO_TACACS_ADMIN_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill in the defaults for the
// tac_plus-ng integration paths.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Tacacs.BaseDir == "" {
		c.Tacacs.BaseDir = "/app/tacacs_config"
	}

	if c.Tacacs.BinaryPath == "" {
		c.Tacacs.BinaryPath = "/usr/local/sbin/tac_plus-ng"
	}

	if c.Tacacs.MavisExecPath == "" {
		c.Tacacs.MavisExecPath = "/usr/local/lib/mavis/mavis_tacplus-ng_ldap.pl"
	}

	if c.Tacacs.ServiceName == "" {
		c.Tacacs.ServiceName = "tacacs"
	}

	if c.Tacacs.SupervisorctlPath == "" {
		c.Tacacs.SupervisorctlPath = "supervisorctl"
	}

	if c.Tacacs.SupervisorConfig == "" {
		c.Tacacs.SupervisorConfig = "/etc/supervisor/conf.d/supervisord.conf"
	}

	if c.Tacacs.CheckTimeout == 0 {
		c.Tacacs.CheckTimeout = 10
	}

	if c.Tacacs.ReloadTimeout == 0 {
		c.Tacacs.ReloadTimeout = 10
	}

	return nil
}
