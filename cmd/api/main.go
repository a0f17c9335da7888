package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"img2cal/config"
	"img2cal/config/sqlite"
	_ "img2cal/docs" // Swagger docs
	announcementSQLite "img2cal/internal/announcement/repository/sqlite"
	announcementUC "img2cal/internal/announcement/usecase"
	"img2cal/internal/feed/sink"
	feedUC "img2cal/internal/feed/usecase"
	"img2cal/internal/httpserver"
	"img2cal/internal/middleware"
	"img2cal/pkg/gstorage"
	"img2cal/pkg/log"
	"img2cal/pkg/openai"
	"img2cal/pkg/period"
	"img2cal/pkg/vision"
)

// @title       JBNU Img2Cal API
// @description Classifies university announcements with OCR and an LLM, then publishes ICS calendar feeds per event category.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting JBNU Img2Cal...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	db, err := sqlite.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer sqlite.Disconnect(db)

	if err := announcementSQLite.CreateSchema(db); err != nil {
		logger.Error(ctx, "Failed to create schema: ", err)
		return
	}

	// OpenAI classifier client
	llm := openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		llm.SetAPIURL(cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "" {
		llm.SetModel(cfg.OpenAI.Model)
	}

	// Google Vision OCR client
	ocr, err := vision.NewClientFromCredentialsFile(ctx, cfg.Vision.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Vision client: ", err)
		return
	}

	// Artifact sink
	feedSink, err := newSink(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize feed sink: ", err)
		return
	}

	// Period parser
	parser, err := period.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		parser, _ = period.NewParser("UTC")
	}

	// 4. Domains
	repo := announcementSQLite.New(db, logger)
	aUC := announcementUC.New(logger, llm, ocr, repo)
	fUC := feedUC.New(logger, repo, feedSink, parser, cfg.Calendar)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.HTTPServer),
		AnnouncementUC: aUC,
		FeedUC:         fUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newSink picks the artifact sink backend from config.
func newSink(ctx context.Context, cfg *config.Config, logger log.Logger) (sink.Sink, error) {
	switch cfg.Storage.Backend {
	case "gcs":
		client, err := gstorage.NewClientFromCredentialsFile(ctx, cfg.Storage.CredentialsPath)
		if err != nil {
			return nil, err
		}
		logger.Infof(ctx, "Feed sink: GCS bucket %s", cfg.Storage.Bucket)
		return sink.NewGCS(client, cfg.Storage.Bucket), nil
	default:
		logger.Infof(ctx, "Feed sink: local directory %s", cfg.Storage.LocalDir)
		return sink.NewLocal(cfg.Storage.LocalDir)
	}
}
