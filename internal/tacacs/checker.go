package tacacs

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoTacacs-Admin/GoTacacs-Admin/internal/db/controller/tacacsconfig"
)

// CheckResult is the outcome of a parse-only run of the daemon binary.
type CheckResult struct {
	OK        bool   `json:"ok"`
	RawOutput string `json:"raw_output"`

	// Line and Message are filled only when the diagnostic output could be
	// parsed; Line is 0 when unknown.
	Line    int    `json:"line,omitempty"`
	Message string `json:"message,omitempty"`
}

// Check runs the daemon binary in parse-only mode against the stored
// artifact of the given row. A non-zero exit reports a syntax failure, not
// an error; errors are reserved for infrastructure problems such as a
// missing binary or an exceeded timeout.
func (e *Engine) Check(ctx context.Context, id uint64) (*CheckResult, error) {
	record, err := tacacsconfig.GetByID(e.db, id)
	if err != nil {
		return nil, err
	}

	if _, err := e.ReadArtifact(record.Filename); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.CheckTimeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.cfg.BinaryPath, "-P", e.artifactPath(record.Filename))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, errors.Wrapf(ErrCheckTimeout, "after %ds", e.cfg.CheckTimeout)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, errors.Wrapf(ErrBinaryNotFound, "%s: %v", e.cfg.BinaryPath, runErr)
		}
	}

	raw := stderr.String()
	if raw == "" {
		raw = stdout.String()
	}

	result := &CheckResult{OK: runErr == nil, RawOutput: raw}
	if result.OK && result.RawOutput == "" {
		result.RawOutput = "syntax check successful"
	}

	result.Line, result.Message = parseDiagnostic(raw)

	log.Debug().
		Uint64("id", id).
		Str("filename", record.Filename).
		Bool("ok", result.OK).
		Msg("syntax check finished")

	return result, nil
}

// parseDiagnostic extracts line and message from a colon-delimited
// diagnostic such as "tac_plus-ng: file.cfg: 12: unknown keyword". Output
// that does not fit the shape becomes the message as-is, with the line
// left at 0.
func parseDiagnostic(raw string) (int, string) {
	trimmed := strings.TrimSpace(raw)

	fields := strings.SplitN(trimmed, ":", 4)
	if len(fields) < 4 {
		return 0, trimmed
	}

	line, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return 0, trimmed
	}

	return line, strings.TrimSpace(fields[3])
}
