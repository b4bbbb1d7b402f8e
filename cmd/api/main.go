package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workpulse/config"
	_ "workpulse/docs" // Swagger docs
	"workpulse/internal/httpserver"
	"workpulse/internal/ingest"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
	"workpulse/pkg/postgres"
)

// @title       WorkPulse API
// @description Personal productivity backend: priority scoring, task inference, work-habit analysis, and a productivity assistant.
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

	logger.Info(ctx, "Starting WorkPulse...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	// 5. HTTP server (repositories, usecases and routes are wired inside)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		DateMath:    dateMathParser,

		IngestEnabled: cfg.Ingest.Enabled,
		IngestConfig: ingest.SecurityConfig{
			Secret:          cfg.Ingest.Secret,
			AllowedIPs:      cfg.Ingest.AllowedIPs,
			RateLimitPerMin: cfg.Ingest.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
