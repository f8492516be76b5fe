package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/pkg/config"
)

// Options configures the HTTP server
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxHeaderBytes  int
	MaxBodyBytes    int64
	EnableCORS      bool
	CORSOrigins     []string
	EnableRequestID bool
	RateLimit       RateLimitOptions
}

// RateLimitOptions configures per-client limits on /api/v1
type RateLimitOptions struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// OptionsFromConfig builds server options from application configuration
func OptionsFromConfig(address string, cfg *config.Config) Options {
	return Options{
		Address:         address,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		MaxHeaderBytes:  cfg.Server.MaxHeaderBytes,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		EnableCORS:      cfg.Security.EnableCORS,
		CORSOrigins:     splitOrigins(cfg.Security.CORSOrigins),
		EnableRequestID: cfg.Security.EnableRequestID,
		RateLimit: RateLimitOptions{
			Enabled:           cfg.RateLimiting.Enabled,
			RequestsPerSecond: float64(cfg.RateLimiting.RequestsPerSecond),
			Burst:             cfg.RateLimiting.Burst,
		},
	}
}

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	opts               Options
	rateLimiters       *sync.Map
	refreshLimiters    *sync.Map
	cleanupInitialized sync.Once
	refreshCleanup     sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(opts Options) *Server {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.MaxHeaderBytes <= 0 {
		opts.MaxHeaderBytes = 1 << 20 // 1 MB
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}

	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:          engine,
		opts:            opts,
		rateLimiters:    &sync.Map{},
		refreshLimiters: &sync.Map{},
		cleanupStop:     make(chan struct{}),
		dependencies:    &types.Dependencies{},
		httpServer: &http.Server{
			Addr:           opts.Address,
			Handler:        engine,
			ReadTimeout:    opts.ReadTimeout,
			WriteTimeout:   opts.WriteTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: opts.MaxHeaderBytes,
		},
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return RegisterRoutes(s.engine, s.dependencies, s.routeOptions())
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.opts.EnableRequestID {
		s.engine.Use(RequestID())
	}

	s.engine.Use(RequestLogger())

	if s.opts.EnableCORS {
		s.engine.Use(CORS(s.opts.CORSOrigins...))
	}

	s.engine.Use(RequestSizeLimitWithSize(s.opts.MaxBodyBytes))
}

func (s *Server) routeOptions() RouteOptions {
	pass := func(c *gin.Context) { c.Next() }
	ro := RouteOptions{Read: pass, Refresh: pass}

	if s.opts.RateLimit.Enabled {
		ro.Read = PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized,
			s.opts.RateLimit.RequestsPerSecond, s.opts.RateLimit.Burst)
		// Refresh hits the remote catalog, so it gets a much tighter budget
		ro.Refresh = PerClientRateLimit(s.refreshLimiters, s.cleanupStop, &s.refreshCleanup, 0.2, 1)
	}
	return ro
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
