package handlers

import (
	"context"

	"github.com/cordial-dev/cordial/internal/models"
	"github.com/cordial-dev/cordial/internal/store"
)

// VersionReporter reports the version string of the database server.
type VersionReporter interface {
	Version(ctx context.Context) (string, error)
}

type Handler struct {
	guests      store.Crud[models.Guest]
	versions    VersionReporter
	allowOrigin string
}

// New returns a handler serving guests and diagnostics. allowOrigin is sent as
// Access-Control-Allow-Origin on every response unless the CORS middleware
// already matched the request's origin.
func New(guests store.Crud[models.Guest], versions VersionReporter, allowOrigin string) *Handler {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &Handler{
		guests:      guests,
		versions:    versions,
		allowOrigin: allowOrigin,
	}
}
