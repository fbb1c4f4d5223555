package tacacs

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsconfig"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

// Activate promotes the artifact of the given row to be the live
// configuration. The sequence is: rewrite the live file from the stored
// artifact, ask the supervisor to restart the daemon, then flip the active
// flag in one transaction. A failed reload is logged and does not fail the
// activation. The live file is rewritten on every call, so a previous
// partial activation is repaired by the next successful one.
func (e *Engine) Activate(ctx context.Context, id uint64) (*models.TacacsConfig, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	record, err := tacacsconfig.GetByID(e.db, id)
	if err != nil {
		return nil, err
	}

	text, err := e.ReadArtifact(record.Filename)
	if err != nil {
		return nil, err
	}

	live := provenanceHeader(record) + text
	if err := os.WriteFile(e.cfg.LiveConfigPath(), []byte(live), artifactPerm); err != nil {
		return nil, errors.Wrapf(err, "writing live configuration %s", e.cfg.LiveConfigPath())
	}

	if err := e.Reload(ctx); err != nil {
		log.Warn().Err(err).
			Str("service", e.cfg.ServiceName).
			Msg("daemon reload failed, activation continues")
	}

	activated, err := tacacsconfig.SetActive(e.db, id)
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint64("id", id).
		Str("filename", activated.Filename).
		Msg("configuration activated")

	return activated, nil
}

// Delete removes an artifact row and its on-disk file. File removal is best
// effort; the row is deleted even when the file cannot be removed.
func (e *Engine) Delete(id uint64) error {
	record, err := tacacsconfig.GetByID(e.db, id)
	if err != nil {
		return err
	}

	path := e.artifactPath(record.Filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", path).Msg("removing artifact file failed")
	}

	return tacacsconfig.Delete(e.db, id)
}

// provenanceHeader records which artifact the live file was written from.
// The daemon treats # lines as comments.
func provenanceHeader(record *models.TacacsConfig) string {
	return fmt.Sprintf("# Tacacs config from %s.cfg\n# Description: %s\n", record.Filename, record.Description)
}
