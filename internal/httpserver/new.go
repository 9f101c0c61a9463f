package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task"
	"smart-task-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Browser-facing surface
	allowedOrigins  []string
	rateLimitPerMin int
	staticDir       string

	// Domains
	priorityUC priority.UseCase
	taskUC     task.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AllowedOrigins  []string
	RateLimitPerMin int
	StaticDir       string // empty disables the UI

	PriorityUC priority.UseCase
	TaskUC     task.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		staticDir:       cfg.StaticDir,
		priorityUC:      cfg.PriorityUC,
		taskUC:          cfg.TaskUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.priorityUC == nil {
		return errors.New("priority usecase is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	return nil
}
