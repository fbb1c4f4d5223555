package tacacs

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Reload asks the process supervisor to restart the daemon so that it picks
// up the live configuration. The call is bounded by the configured reload
// timeout. Callers decide whether a failure matters; activation treats it
// as a warning.
func (e *Engine) Reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.ReloadTimeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.cfg.SupervisorctlPath,
		"-c", e.cfg.SupervisorConfig,
		"restart", e.cfg.ServiceName,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return errors.Wrapf(ErrReloadTimeout, "after %ds", e.cfg.ReloadTimeout)
	}

	if err != nil {
		detail := stderr.String()
		if detail == "" {
			detail = stdout.String()
		}

		return errors.Wrapf(err, "supervisorctl restart %s: %s", e.cfg.ServiceName, detail)
	}

	log.Info().Str("service", e.cfg.ServiceName).Msg("daemon reloaded via supervisorctl")

	return nil
}
