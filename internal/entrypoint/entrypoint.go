package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/multimedia/internal/config"
	"github.com/mrlokans/multimedia/internal/database"
	http_controllers "github.com/mrlokans/multimedia/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// NewLogger builds the process logger described by cfg.
func NewLogger(cfg config.Log, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenDatabase connects to the configured store and brings its schema up to date.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	db, err := database.NewDatabase(cfg.Database.URL, database.Options{
		LogLevel:     cfg.Database.LogLevel,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 sends SIGINT.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Release the store only after in-flight requests have returned their sessions.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	slog.Info("Server exiting")
}

// Run serves the catalog API until SIGINT or SIGTERM. A store that cannot
// be reached at startup is fatal.
func Run(cfg *config.Config, version string) {
	slog.SetDefault(NewLogger(cfg.Log, os.Stdout))
	gin.SetMode(gin.ReleaseMode)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Multimedia Manager", "version", version)

	db, err := OpenDatabase(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         slog.Default(),
		Version:        version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	})
}

// Migrate initializes the schema and exits.
func Migrate(cfg *config.Config) error {
	slog.SetDefault(NewLogger(cfg.Log, os.Stdout))

	if err := cfg.Validate(); err != nil {
		return err
	}
	db, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}
	return db.Close()
}
