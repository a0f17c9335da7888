package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"img2cal/config"
	"img2cal/config/sqlite"
	announcementSQLite "img2cal/internal/announcement/repository/sqlite"
	"img2cal/internal/feed/sink"
	feedUC "img2cal/internal/feed/usecase"
	"img2cal/pkg/gstorage"
	"img2cal/pkg/log"
	"img2cal/pkg/period"
)

// main is the entry point for the one-shot feed generator. It reads the
// announcement store, writes one ICS artifact per event category and exits.
// Meant for cron or CI schedules; the API server exposes the same operation
// at POST /api/v1/feeds/generate.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting feed generation...")

	db, err := sqlite.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		os.Exit(1)
	}
	defer sqlite.Disconnect(db)

	if err := announcementSQLite.CreateSchema(db); err != nil {
		logger.Error(ctx, "Failed to create schema: ", err)
		os.Exit(1)
	}

	var feedSink sink.Sink
	switch cfg.Storage.Backend {
	case "gcs":
		client, gcsErr := gstorage.NewClientFromCredentialsFile(ctx, cfg.Storage.CredentialsPath)
		if gcsErr != nil {
			logger.Error(ctx, "Failed to initialize GCS client: ", gcsErr)
			os.Exit(1)
		}
		feedSink = sink.NewGCS(client, cfg.Storage.Bucket)
	default:
		feedSink, err = sink.NewLocal(cfg.Storage.LocalDir)
		if err != nil {
			logger.Error(ctx, "Failed to initialize local sink: ", err)
			os.Exit(1)
		}
	}

	parser, err := period.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		parser, _ = period.NewParser("UTC")
	}

	repo := announcementSQLite.New(db, logger)
	uc := feedUC.New(logger, repo, feedSink, parser, cfg.Calendar)

	out, err := uc.Generate(ctx)
	if err != nil {
		logger.Error(ctx, "Feed generation failed: ", err)
		os.Exit(1)
	}

	for _, f := range out.Feeds {
		logger.Infof(ctx, "Wrote %s (%d events)", f.Filename, f.EventCount)
	}
	logger.Infof(ctx, "Feed generation done: %d feeds, %d skipped", len(out.Feeds), out.Skipped)
}
