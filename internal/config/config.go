package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		URL          string
		LogLevel     string // gorm logger level: silent, error, warn, info
		MaxOpenConns int
		MaxIdleConns int
	}
	Log struct {
		Level  string
		Format string // text or json
	}
	CORS struct {
		AllowedOrigins []string // "*" allows any origin
	}
)

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment take precedence over it.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("db_log_level", "warn")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cors_allowed_origins", "*")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			URL:          v.GetString("DATABASE_URL"),
			LogLevel:     strings.ToLower(v.GetString("DB_LOG_LEVEL")),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		CORS: CORS{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		problems = append(problems, "PORT must be between 1 and 65535")
	}
	if c.Database.URL == "" {
		problems = append(problems, "DATABASE_URL must not be empty")
	}
	if !slices.Contains(validLogLevels, c.Log.Level) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	if !slices.Contains(validDBLogLevels, c.Database.LogLevel) {
		problems = append(problems, fmt.Sprintf("DB_LOG_LEVEL must be one of: %s", strings.Join(validDBLogLevels, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
