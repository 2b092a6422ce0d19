// Package playground serves the rlang front-end over WebSocket connections
// for browser based experiments.
package playground

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang"
	"github.com/msto63/alcc/pkg/core/health"
	"github.com/msto63/alcc/pkg/core/version"
)

// Server is the playground HTTP server
type Server struct {
	httpServer *http.Server
	engine     *rlang.Engine
	health     *health.Registry
	logger     *alcclog.Logger
	config     Config
	sessions   *sessionCounter
}

// Config holds server configuration
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// IdleTimeout closes connections without messages or pongs
	IdleTimeout time.Duration

	// MaxMessageSize limits a single client message in bytes
	MaxMessageSize int64

	// AllowAllOrigins disables the same-origin check of the upgrade
	AllowAllOrigins bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:           "127.0.0.1:8080",
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxMessageSize: 128 * 1024,
	}
}

// New creates a new playground server
func New(engine *rlang.Engine, logger *alcclog.Logger, cfg Config) *Server {
	defaults := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaults.IdleTimeout
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = defaults.MaxMessageSize
	}
	if logger == nil {
		logger = alcclog.GetDefault()
	}
	logger = logger.WithField("component", "playground")

	s := &Server{
		engine:   engine,
		logger:   logger,
		config:   cfg,
		sessions: &sessionCounter{},
	}

	// Create health registry
	s.health = health.NewRegistry("playground", version.Playground)
	s.health.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		results, err := engine.Evaluate("1 + 2 * 3")
		if err != nil || len(results) != 1 || results[0].Value != 7 {
			return health.CheckResult{
				Name:    "engine",
				Status:  health.StatusUnhealthy,
				Message: "engine does not evaluate the probe expression",
			}
		}
		return health.CheckResult{Name: "engine", Status: health.StatusHealthy, Message: "engine evaluates"}
	})
	s.health.RegisterFunc("sessions", func(ctx context.Context) health.CheckResult {
		return health.CheckResult{
			Name:    "sessions",
			Status:  health.StatusHealthy,
			Details: map[string]interface{}{"active": s.sessions.load()},
		}
	})

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the HTTP handler with all routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// WebSocket route
	mux.Handle("/ws", NewWebSocketHandler(s.engine, s.logger, s.config, s.sessions))

	// Health route
	mux.Handle("/healthz", health.Handler(s.health, 5*time.Second))

	return loggingMiddleware(s.logger, mux)
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting playground", alcclog.Fields{"addr": s.config.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping playground", alcclog.Fields{"sessions": s.sessions.load()})
	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return s.config.Addr
}

// Sessions returns the number of open WebSocket sessions
func (s *Server) Sessions() int64 {
	return s.sessions.load()
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

type sessionCounter struct {
	n atomic.Int64
}

func (c *sessionCounter) add(delta int64) { c.n.Add(delta) }
func (c *sessionCounter) load() int64     { return c.n.Load() }

// sameOrigin accepts requests without Origin header and requests whose
// Origin host matches the Host header
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *alcclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Debug("HTTP request", alcclog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for the WebSocket upgrade
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("playground: response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}
