package http

import (
	"log/slog"

	"github.com/mrlokans/multimedia/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Database opens the per-request sessions and backs the health check.
	Database *database.Database

	// AllowedOrigins is the CORS allow-list; "*" allows any origin.
	AllowedOrigins []string

	// Logger receives access logs. slog.Default() is used when nil.
	Logger *slog.Logger

	// Application info
	Version string
}
