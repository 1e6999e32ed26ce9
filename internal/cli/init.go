// Package cli provides the process bootstrap shared by the lineup commands:
// environment file, configuration, logging and the SQLite store.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lineup/internal/config"
	applog "lineup/internal/log"
	"lineup/internal/storage"
)

// LoadEnvFile loads a .env file from the working directory if there is one.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from configPath and the
// environment. A non-empty dbPath overrides the configured database path.
func LoadAndValidateConfig(configPath, dbPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the stderr logger for cfg and installs it as the default.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logCfg := applog.DefaultConfig()
	if level, err := applog.ParseLevel(cfg.LogLevel); err == nil {
		logCfg.Level = level
	}
	logger := applog.New(logCfg)
	applog.SetDefault(logger)
	return logger
}

// InitSQLite opens the ledger store at dbPath, creating the schema if needed.
func InitSQLite(ctx context.Context, logger *applog.Logger, dbPath string) (*storage.SQLiteRepository, error) {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize SQLite repository",
			applog.FieldError, err,
			applog.FieldPath, dbPath)
		return nil, fmt.Errorf("open ledger %s: %w", dbPath, err)
	}
	logger.DebugContext(ctx, "Ledger opened",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldPath, dbPath)
	return repo, nil
}

// NotifyContext returns a context cancelled on SIGINT or SIGTERM so an
// interrupted command abandons its in-flight statement.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
