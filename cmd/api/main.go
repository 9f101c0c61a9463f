package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-tracker/config"
	_ "smart-task-tracker/docs" // Swagger docs
	"smart-task-tracker/internal/httpserver"
	"smart-task-tracker/internal/priority"
	priorityPredictor "smart-task-tracker/internal/priority/predictor"
	"smart-task-tracker/internal/priority/rules"
	priorityUsecase "smart-task-tracker/internal/priority/usecase"
	"smart-task-tracker/internal/task/repository/memory"
	taskUsecase "smart-task-tracker/internal/task/usecase"
	"smart-task-tracker/pkg/log"
	pkgPredictor "smart-task-tracker/pkg/predictor"
)

// @title       Smart Task Tracker API
// @description Personal task tracker that assigns each task a priority from local rules or an external predictor.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Smart Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Priority domain
	engine := rules.New(rules.Policy{
		EscalateOnUrgent:       cfg.Policy.EscalateOnUrgent,
		ForceCritical:          cfg.Policy.ForceCritical,
		ForceCriticalMaxEffort: cfg.Policy.ForceCriticalMaxEffort,
		ForceCriticalKeywords:  cfg.Policy.ForceCriticalKeywords,
	}, nil)

	var predictor priority.Predictor
	if cfg.Predictor.Enabled {
		client, err := pkgPredictor.New(cfg.Predictor.URL, cfg.Predictor.Timeout)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize predictor client: %v", err)
			os.Exit(1)
		}
		predictor = priorityPredictor.New(client, logger)
		logger.Infof(ctx, "External predictor enabled: %s (timeout %s)", cfg.Predictor.URL, cfg.Predictor.Timeout)
	} else {
		logger.Info(ctx, "External predictor disabled, using local rules only")
	}

	priorityUC := priorityUsecase.New(logger, engine, predictor, cfg.Predictor.Timeout)

	// 4. Task domain
	taskRepo := memory.New(logger)
	taskUC := taskUsecase.New(logger, taskRepo, priorityUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		StaticDir:       cfg.Static.Dir,
		PriorityUC:      priorityUC,
		TaskUC:          taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
