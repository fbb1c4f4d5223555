// Package tacacsconfig exposes the configuration artifact lifecycle over
// the JSON API: list, preview, create, syntax check, activate and delete.
package tacacsconfig

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsconfig"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/tacacs"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/web/handler"
)

// Path is the base path of the artifact API.
const Path = handler.APIPath + "/tacacs-configs"

// Service is the artifact lifecycle handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	engine    *tacacs.Engine
	validator *validator.Validate
}

// Handler is the artifact lifecycle handler.
var Handler = Service{}

// Init initializes the artifact lifecycle handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, engine *tacacs.Engine) {
	if app == nil || cfg == nil || db == nil || engine == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.engine = engine
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/active", s.GetActive)
	app.Get(Path+"/preview", s.Preview)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, s.Create)
	app.Post(Path+"/:id/check", s.Check)
	app.Post(Path+"/:id/activate", s.Activate)
	app.Delete(Path+"/:id", s.Delete)
}

// createRequest is the body of the create call.
type createRequest struct {
	Filename    string `json:"filename" validate:"required,max=30"`
	Description string `json:"description" validate:"max=255"`
}

// configResponse is the JSON shape of an artifact record.
type configResponse struct {
	ID          uint64    `json:"id"`
	Filename    string    `json:"filename"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Content is the artifact text, present on single-record reads only.
	Content string `json:"content,omitempty"`
}

func toResponse(cfg *models.TacacsConfig) configResponse {
	return configResponse{
		ID:          cfg.ID,
		Filename:    cfg.Filename,
		Description: cfg.Description,
		Active:      cfg.Active,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

// List returns all artifact records in insertion order.
func (s *Service) List(c *fiber.Ctx) error {
	cfgs, err := tacacsconfig.GetAll(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	responses := make([]configResponse, 0, len(cfgs))
	for i := range cfgs {
		responses = append(responses, toResponse(&cfgs[i]))
	}

	return c.JSON(responses)
}

// Get returns one artifact record with its stored text.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	cfg, err := tacacsconfig.GetByID(s.db, uint64(id))
	if err != nil {
		return s.fail(c, err)
	}

	content, err := s.engine.ReadArtifact(cfg.Filename)
	if err != nil {
		return s.fail(c, err)
	}

	response := toResponse(cfg)
	response.Content = content

	return c.JSON(response)
}

// GetActive returns the currently active artifact record.
func (s *Service) GetActive(c *fiber.Ctx) error {
	cfg, err := tacacsconfig.GetActive(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(toResponse(cfg))
}

// Preview compiles the current entity store without persisting anything.
func (s *Service) Preview(c *fiber.Ctx) error {
	text, err := s.engine.Preview()
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{"content": text})
}

// Create compiles the current entity store into a new artifact.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cfg, err := s.engine.Create(req.Filename, req.Description)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(cfg))
}

// Check runs the daemon's parse-only mode against a stored artifact.
func (s *Service) Check(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	result, err := s.engine.Check(c.Context(), uint64(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(result)
}

// Activate promotes one artifact to be the live configuration.
func (s *Service) Activate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	cfg, err := s.engine.Activate(c.Context(), uint64(id))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(toResponse(cfg))
}

// Delete removes an artifact record and its on-disk file.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := s.engine.Delete(uint64(id)); err != nil {
		return s.fail(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// fail maps the error taxonomy onto HTTP status codes.
func (s *Service) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, tacacs.ErrInvalidFilename),
		errors.Is(err, tacacs.ErrReservedFilename),
		errors.Is(err, tacacsconfig.ErrFilenameEmpty),
		errors.Is(err, tacacsconfig.ErrConfigAlreadyExists):
		status = fiber.StatusBadRequest
	case errors.Is(err, tacacsconfig.ErrConfigNotFound),
		errors.Is(err, tacacsconfig.ErrNoActiveConfig),
		errors.Is(err, tacacs.ErrArtifactNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, tacacs.ErrCheckTimeout),
		errors.Is(err, tacacs.ErrReloadTimeout):
		status = fiber.StatusGatewayTimeout
	}

	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("tacacs config request failed")
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
