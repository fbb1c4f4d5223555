package config

import (
	"path/filepath"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Tacacs    Tacacs
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}

// Tacacs holds the tac_plus-ng integration settings: where compiled
// configuration artifacts live, how to invoke the daemon binary for syntax
// checks and how to ask the process supervisor for a reload.
type Tacacs struct {
	// BaseDir is the directory shared with the tac_plus-ng container.
	// Artifacts are stored under its etc/ subdirectory.
	BaseDir string

	// BinaryPath is the tac_plus-ng binary used for parse-only checks.
	BinaryPath string

	// MavisExecPath is the mavis LDAP bridge script referenced from the
	// generated mavis module block.
	MavisExecPath string

	// ServiceName is the supervisor program name of the daemon.
	ServiceName string

	// SupervisorctlPath is the supervisorctl binary used to restart the
	// daemon after activation.
	SupervisorctlPath string

	// SupervisorConfig is the supervisord configuration file passed to
	// supervisorctl.
	SupervisorConfig string

	// CheckTimeout bounds the syntax check subprocess, in seconds.
	CheckTimeout int

	// ReloadTimeout bounds the supervisorctl call, in seconds.
	ReloadTimeout int
}

// LiveConfigName is the reserved artifact name consumed directly by the
// daemon. It can never be used as a stored artifact filename.
const LiveConfigName = "tac_plus-ng"

// EtcDir returns the artifact directory.
func (t Tacacs) EtcDir() string {
	return filepath.Join(t.BaseDir, "etc")
}

// LiveConfigPath returns the canonical live configuration file path.
func (t Tacacs) LiveConfigPath() string {
	return filepath.Join(t.EtcDir(), LiveConfigName+".cfg")
}
