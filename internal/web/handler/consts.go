// Package handler holds shared constants and the init interface of the web
// handler packages.
package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// APIPath is the prefix of the JSON API routes.
	APIPath = RootPath + "api/v1"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
