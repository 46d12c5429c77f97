package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/multimedia/internal/entities"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options tunes the connection pool and SQL logging.
type Options struct {
	LogLevel     string // silent, error, warn or info
	MaxOpenConns int
	MaxIdleConns int
}

type Database struct {
	DB     *gorm.DB
	driver string
}

// NewDatabase opens the store named by dsn and verifies it is reachable.
// PostgreSQL URLs and key/value DSNs select the postgres driver; anything
// else is treated as a SQLite database path.
func NewDatabase(dsn string, opts Options) (*Database, error) {
	dialector, driver := dialectorFor(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 newGormLogger(opts.LogLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", Classify(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to reach database: %w", Classify(err))
	}

	slog.Info("Database connection established", "driver", driver)
	return &Database{DB: db, driver: driver}, nil
}

// InitSchema creates any missing tables, columns and indexes for every
// entity. It never drops data, so calling it repeatedly is safe.
func (d *Database) InitSchema() error {
	if err := d.DB.AutoMigrate(entities.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", Classify(err))
	}
	slog.Info("Database schema initialized", "driver", d.driver)
	return nil
}

func (d *Database) Driver() string {
	return d.driver
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dsn string) (gorm.Dialector, string) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return postgres.Open(dsn), DriverPostgres
	default:
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(dsn, "sqlite://"))), DriverSQLite
	}
}

// sqliteDSN makes concurrent writers wait for the file lock instead of
// failing immediately with SQLITE_BUSY.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_busy_timeout=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000"
}

func newGormLogger(level string) logger.Interface {
	return logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  ParseLogLevel(level),
			IgnoreRecordNotFoundError: true,
		},
	)
}

// ParseLogLevel maps a configuration string onto gorm's logger levels,
// falling back to warn for unknown values.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
