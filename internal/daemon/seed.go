package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/daemonsetting"
)

// defaultLogDir is where the generated configuration points the daemon's
// own access/authentication/authorization/accounting logs.
const defaultLogDir = "/var/log/tac_plus-ng/"

func seed(_ *config.Config, db *gorm.DB) {
	if err := daemonsetting.Seed(db, defaultLogDir); err != nil {
		log.Error().Err(err).Msg("seeding daemon settings failed")
	}
}
