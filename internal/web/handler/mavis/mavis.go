// Package mavis exposes the mavis LDAP bridge settings over the JSON API:
// a preview of the rendered module block and a live connectivity test.
package mavis

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/mavis"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/tacacs"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/web/handler"
)

// Path is the base path of the mavis API.
const Path = handler.APIPath + "/mavis"

// Service is the mavis handler service.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	engine *tacacs.Engine
}

// Handler is the mavis handler.
var Handler = Service{}

// Init initializes the mavis handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, engine *tacacs.Engine) {
	if app == nil || cfg == nil || db == nil || engine == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.engine = engine

	app.Get(Path+"/preview", s.Preview)
	app.Post(Path+"/test", s.Test)
}

// Preview returns the mavis module block as it would appear in a compiled
// configuration.
func (s *Service) Preview(c *fiber.Ctx) error {
	snap, err := tacacs.LoadSnapshot(s.db)
	if err != nil {
		log.Error().Err(err).Msg("loading snapshot for mavis preview failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"content": tacacs.RenderMavisBlock(snap.MavisSettings, s.cfg.Tacacs.MavisExecPath)})
}

// Test dials and binds every configured LDAP host.
func (s *Service) Test(c *fiber.Ctx) error {
	settings, err := mavis.LoadSettings(s.db)
	if err != nil {
		if errors.Is(err, mavis.ErrNoHosts) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		log.Error().Err(err).Msg("loading mavis settings failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	results := mavis.Check(c.Context(), settings)

	ok := true
	for _, result := range results {
		ok = ok && result.OK
	}

	return c.JSON(fiber.Map{"ok": ok, "hosts": results})
}
