package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-parser/config"
	_ "smart-task-parser/docs" // Swagger docs
	"smart-task-parser/internal/extraction/modelbased"
	"smart-task-parser/internal/extraction/rulebased"
	extractionUC "smart-task-parser/internal/extraction/usecase"
	"smart-task-parser/internal/httpserver"
	"smart-task-parser/internal/middleware"
	"smart-task-parser/internal/task/repository/memory"
	taskUC "smart-task-parser/internal/task/usecase"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/gcalendar"
	"smart-task-parser/pkg/llmprovider"
	"smart-task-parser/pkg/log"
)

// @title       Smart Task Parser API
// @description Turns free-text task descriptions into structured tasks with a model-backed parser and a rule-based fallback.
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

	logger.Info(ctx, "Starting Smart Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Extraction.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extraction.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Extraction: model-backed first, rule-based fallback
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	extractor := extractionUC.New(
		logger,
		modelbased.New(logger, manager, dateMathParser, cfg.Extraction.Verbose),
		rulebased.New(dateMathParser),
	)

	// 5. Task collection
	taskRepo, err := memory.New(logger, cfg.TaskStore.Capacity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task store: ", err)
		return
	}

	// Google Calendar client (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	uc := taskUC.New(logger, extractor, taskRepo, calendar, cfg.GoogleCalendar.CalendarID, dateMathParser)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUseCase: uc,
		Middleware:  middleware.New(logger, cfg.RateLimit.RequestsPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
