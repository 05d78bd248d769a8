package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-planner/internal/auth"
	"smart-task-planner/internal/middleware"
	"smart-task-planner/internal/planner"
	"smart-task-planner/pkg/log"
)

const defaultShutdownTimeout = 15 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	mw middleware.Middleware

	// Planner domain
	plannerUC      planner.UseCase
	historyContext int

	// Auth domain
	authUC auth.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware

	PlannerUseCase planner.UseCase
	// HistoryContext is how many past turns each request hands the planner.
	HistoryContext int

	AuthUseCase auth.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		plannerUC:       cfg.PlannerUseCase,
		historyContext:  cfg.HistoryContext,
		authUC:          cfg.AuthUseCase,
	}

	if err := srv.validate(); err != nil {
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
	if srv.plannerUC == nil {
		return errors.New("planner use case is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	return nil
}
