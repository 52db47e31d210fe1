package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-api/internal/middleware"
	"task-api/internal/model"
	"task-api/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     model.Environment
	apiPrefix       string
	shutdownTimeout time.Duration

	// Storage. A nil postgresDB selects the in-memory task repository.
	postgresDB *sql.DB

	// Middlewares
	mw          middleware.Middleware
	metrics     *middleware.Metrics
	metricsPath string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	APIPrefix       string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB

	RateLimit   middleware.RateLimitConfig
	Metrics     *middleware.Metrics
	MetricsPath string
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     model.Environment(cfg.Environment),
		apiPrefix:       cfg.APIPrefix,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		metrics:         cfg.Metrics,
		metricsPath:     cfg.MetricsPath,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metricsPath == "" {
		srv.metricsPath = "/metrics"
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{
		RateLimit: cfg.RateLimit,
		Metrics:   cfg.Metrics,
	})

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
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
