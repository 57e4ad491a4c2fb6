// Package server exposes the resolution engine and agent proxy over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ernestocullari/audience-pathways/internal/service"
)

// Config holds HTTP server settings.
type Config struct {
	Addr            string
	SheetName       string
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the standard server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server wires the fetcher, resolver, agent proxy, and history store behind
// the HTTP API.
type Server struct {
	fetcher  service.DatasetFetcher
	resolver service.Resolver
	agent    service.AgentClient
	history  service.HistoryStore
	logger   *slog.Logger
	router   *gin.Engine
	cfg      Config
}

// Option configures optional server collaborators.
type Option func(*Server)

// WithAgent attaches the hosted agent proxy.
func WithAgent(client service.AgentClient) Option {
	return func(s *Server) { s.agent = client }
}

// WithHistory attaches the resolution history store.
func WithHistory(store service.HistoryStore) Option {
	return func(s *Server) { s.history = store }
}

// New creates the HTTP server.
func New(cfg Config, fetcher service.DatasetFetcher, resolver service.Resolver, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:      cfg,
		fetcher:  fetcher,
		resolver: resolver,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api/v1")
	api.POST("/resolve", s.handleResolve)
	api.POST("/tools/audience-search", s.handleToolSearch)
	api.POST("/chat", s.handleChat)

	s.router = router
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
