package tacacs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/config"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsconfig"
	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/models"
)

const (
	artifactExt     = ".cfg"
	maxFilenameLen  = 30
	artifactDirPerm = 0o755
	artifactPerm    = 0o644
)

var filenamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Engine compiles policy snapshots into configuration artifacts and manages
// their lifecycle on disk and in the store.
type Engine struct {
	cfg config.Tacacs
	db  *gorm.DB

	// mu serializes activation so that concurrent calls cannot both end
	// with an active row.
	mu sync.Mutex
}

// NewEngine returns an engine writing artifacts under cfg's etc directory.
func NewEngine(cfg config.Tacacs, db *gorm.DB) *Engine {
	return &Engine{cfg: cfg, db: db}
}

// ValidateFilename checks an artifact name against the naming rules. The
// name is a bare filename without extension; anything that could escape the
// etc directory or collide with the live configuration is rejected.
func ValidateFilename(name string) error {
	if name == "" || name == "." || name == ".." {
		return errors.Wrapf(ErrInvalidFilename, "%q", name)
	}

	if len(name) > maxFilenameLen {
		return errors.Wrapf(ErrInvalidFilename, "%q exceeds %d characters", name, maxFilenameLen)
	}

	if !filenamePattern.MatchString(name) {
		return errors.Wrapf(ErrInvalidFilename, "%q", name)
	}

	if name == config.LiveConfigName {
		return errors.Wrapf(ErrReservedFilename, "%q", name)
	}

	return nil
}

// Assemble compiles the snapshot and renders the complete configuration
// document, shebang line included.
func (e *Engine) Assemble(snap *Snapshot) string {
	var sb strings.Builder

	sb.WriteString("#!" + e.cfg.BinaryPath + "\n")
	sb.WriteString(Render(Compile(snap, e.cfg)))

	return sb.String()
}

// Preview compiles the current store contents without persisting anything.
func (e *Engine) Preview() (string, error) {
	snap, err := LoadSnapshot(e.db)
	if err != nil {
		return "", err
	}

	return e.Assemble(snap), nil
}

// Create compiles the current store contents and persists the result as a
// new artifact, both on disk and as an inactive store row.
func (e *Engine) Create(filename, description string) (*models.TacacsConfig, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	// The filename must be free before anything is compiled or written,
	// otherwise a rejected create would overwrite the existing artifact.
	if _, err := tacacsconfig.Get(e.db, filename); err == nil {
		return nil, errors.Wrapf(tacacsconfig.ErrConfigAlreadyExists, "%q", filename)
	} else if !errors.Is(err, tacacsconfig.ErrConfigNotFound) {
		return nil, err
	}

	text, err := e.Preview()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(e.cfg.EtcDir(), artifactDirPerm); err != nil {
		return nil, errors.Wrap(err, "creating artifact directory")
	}

	path := e.artifactPath(filename)
	if err := os.WriteFile(path, []byte(text), artifactPerm); err != nil {
		return nil, errors.Wrapf(err, "writing artifact %s", path)
	}

	record, err := tacacsconfig.Insert(e.db, &models.TacacsConfig{
		Filename:    filename,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("filename", filename).Str("path", path).Msg("configuration artifact created")

	return record, nil
}

// ReadArtifact returns the stored text of a previously created artifact.
func (e *Engine) ReadArtifact(filename string) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}

	data, err := os.ReadFile(e.artifactPath(filename))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrArtifactNotFound, "%q", filename)
		}

		return "", errors.Wrapf(err, "reading artifact %q", filename)
	}

	return string(data), nil
}

func (e *Engine) artifactPath(filename string) string {
	return filepath.Join(e.cfg.EtcDir(), filename+artifactExt)
}
