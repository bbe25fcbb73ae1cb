// Package backend selects and constructs the record Source that serves
// queries, based on the configured data backend.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fundtrack/internal/config"
	"fundtrack/internal/records"
	"fundtrack/internal/storage"
)

// Type is the serving data backend.
type Type string

const (
	// JSONBackend reads the JSON data file on every request (default).
	JSONBackend Type = "json"
	// SQLiteBackend serves from the SQLite mirror.
	SQLiteBackend Type = "sqlite"
	// MemoryBackend loads the JSON data file once at startup and serves
	// from memory; meant for demos and tests.
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the constructed source and an optional cleanup function.
type Result struct {
	Source  records.Source
	Cleanup CleanupFunc
}

// Config holds what the factory needs to build a source.
type Config struct {
	Type         Type
	DataFile     string
	SQLiteDBPath string
}

// FromAppConfig converts the application config to a backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}
	t := Type(appConfig.DataBackend)
	if !t.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}
	return Config{
		Type:         t,
		DataFile:     appConfig.DataFile,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Factory creates record sources based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSource builds the serving source for the configured backend.
func (f *Factory) CreateSource(ctx context.Context, cfg Config) (*Result, error) {
	switch cfg.Type {
	case JSONBackend:
		f.logger.Info("Initialized JSON file backend", "data_file", cfg.DataFile)
		return &Result{Source: records.NewFileStore(cfg.DataFile)}, nil

	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		recs, err := records.NewFileStore(cfg.DataFile).LoadRecords(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed memory backend: %w", err)
		}
		f.logger.Info("Initialized memory backend", "data_file", cfg.DataFile, "records", len(recs))
		return &Result{Source: records.NewMemoryStore(recs...)}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
