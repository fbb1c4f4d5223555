package tacacs

import (
	"errors"
)

var (
	// ErrInvalidFilename is returned when an artifact filename contains
	// characters outside [a-zA-Z0-9._-], is empty, is "." or "..", or
	// exceeds the maximum length.
	ErrInvalidFilename = errors.New("invalid artifact filename")

	// ErrReservedFilename is returned when an artifact filename equals the
	// live configuration name consumed by the daemon.
	ErrReservedFilename = errors.New("filename is reserved for the live configuration")

	// ErrArtifactNotFound is returned when an artifact file is missing on disk.
	ErrArtifactNotFound = errors.New("artifact file not found")

	// ErrBinaryNotFound is returned when the tac_plus-ng binary is not available
	// for syntax checking.
	ErrBinaryNotFound = errors.New("tac_plus-ng binary not found")

	// ErrCheckTimeout is returned when the syntax check subprocess exceeded its
	// time bound. The check may be retried.
	ErrCheckTimeout = errors.New("syntax check timed out")

	// ErrReloadTimeout is returned when the supervisor reload call exceeded its
	// time bound. The reload may be retried.
	ErrReloadTimeout = errors.New("daemon reload timed out")
)
