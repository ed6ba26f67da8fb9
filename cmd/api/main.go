package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"construction-visit-analysis/config"
	_ "construction-visit-analysis/docs" // Swagger docs
	"construction-visit-analysis/internal/httpserver"
	"construction-visit-analysis/pkg/gcalendar"
	"construction-visit-analysis/pkg/log"
	"construction-visit-analysis/pkg/openai"
)

// @title       Construction Visit Analysis API
// @description Turns construction-site visit transcripts into validated task schedules grounded in per-location history.
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Construction Visit Analysis...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable at startup (will retry on demand): %v", err)
	}

	// 4. OpenAI client
	timeout, err := time.ParseDuration(cfg.OpenAI.Timeout)
	if err != nil {
		timeout = openai.DefaultTimeout
	}
	llm := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		APIURL:  cfg.OpenAI.BaseURL,
		Timeout: timeout,
	})

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		Calendar:    calendarClient,
		Timezone:    cfg.GoogleCalendar.Timezone,
		History:     cfg.History,
		Schedule:    cfg.Schedule,
		RateLimit:   cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
