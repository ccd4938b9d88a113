// Package server exposes the generation pipeline over HTTP for scripting and
// future web front ends.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alkime/pillars/internal/config"
	"github.com/alkime/pillars/internal/content"
	"github.com/alkime/pillars/internal/pillars"
	"github.com/gin-gonic/gin"
)

// ContentGenerator is the slice of the generator the handlers need; tests
// substitute a mock.
type ContentGenerator interface {
	Pillar(gc content.GenerationContext) pillars.Pillar
	GenerateIdeas(ctx context.Context, gc content.GenerationContext) ([]content.Idea, error)
	GenerateBriefPosts(ctx context.Context, idea content.Idea, gc content.GenerationContext) ([]string, error)
}

// Server represents the HTTP server
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator ContentGenerator
	schedule  *pillars.Schedule
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger, generator ContentGenerator, schedule *pillars.Schedule) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Failed to set trusted proxies", "error", err)
	}

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: generator,
		schedule:  schedule,
	}

	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router returns the underlying Gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/pillars", s.handleSchedule)
		api.GET("/pillars/:day", s.handlePillar)
		api.POST("/ideas", s.handleIdeas)
		api.POST("/briefs", s.handleBriefs)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pillars",
	})
}
