package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fundtrack/internal/amqp"
	"fundtrack/internal/config"
	"fundtrack/internal/ingest"
	applog "fundtrack/internal/log"
	"fundtrack/internal/records"
	gsheet "fundtrack/internal/sheets/google"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentImport)
	slog.SetDefault(logger.Logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	sources, err := ingest.LoadSources(cfg.SourcesFile)
	if err != nil {
		logger.Error("Failed to load tracker sources", "error", err, "path", cfg.SourcesFile)
		os.Exit(1)
	}
	if len(sources.Trackers) == 0 {
		logger.Info("No tracker sources configured, nothing to import", "path", cfg.SourcesFile)
		return
	}

	reader, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}

	// Sync publishing is best effort: a missing broker downgrades the
	// import, it does not block it.
	var pub ingest.SyncPublisher
	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("AMQP unavailable, importing without sync messages", "error", err)
	} else {
		defer amqpClient.Close()
		pub = amqpClient
	}

	store := records.NewFileStore(cfg.DataFile)
	importer := ingest.NewImporter(store, reader, pub, logger.Logger)

	added, total, err := importer.Run(ctx, sources)
	if err != nil {
		logger.Error("Import failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Import finished", "added", added, "total", total)
}
