// Package daemon wires the store, the configuration engine and the web
// service together.
package daemon

import (
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/dsn"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/tacacs"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	port       int
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(":" + strconv.Itoa(d.port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	if err = db.AutoMigrate(
		&models.DaemonSetting{},
		&models.MavisSetting{},
		&models.Host{},
		&models.TacacsGroup{},
		&models.TacacsUser{},
		&models.TacacsService{},
		&models.Profile{},
		&models.ProfileScript{},
		&models.ProfileScriptSet{},
		&models.Ruleset{},
		&models.RulesetScript{},
		&models.RulesetScriptSet{},
		&models.ConfigurationOption{},
		&models.TacacsConfig{},
	); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}

	seed(cfg, db)

	engine := tacacs.NewEngine(cfg.Tacacs, db)

	return &Daemon{
		webService: web.New(cfg, db, engine),
		port:       cfg.Webserver.Port,
	}
}

// openDialector selects the gorm driver for the configured engine. SQLite
// uses the pure Go driver, so no cgo is needed.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "sqlite":
		return sqlite.Open(dsn.Create(cfg))
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg))
	default: // mysql
		return gormmysql.Open(dsn.Create(cfg))
	}
}
