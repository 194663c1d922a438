package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"drawcast/app"
	"drawcast/internal"
)

// Server represents the drawcast JSON API
type Server struct {
	router  *gin.Engine
	service *app.PredictionService
	logger  *internal.Logger
}

// Config holds API server configuration
type Config struct {
	Port    string
	GinMode string
}

// NewServer creates the API server around a prediction service
func NewServer(cfg Config, service *app.PredictionService) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		router:  gin.Default(),
		service: service,
		logger:  internal.DefaultLogger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/draws", s.handleAddDraw)
	s.router.POST("/predict", s.handlePredict)
	s.router.POST("/results", s.handleRecordResult)
	s.router.GET("/stats", s.handleStats)
}

// Router exposes the gin engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server on the configured port
func (s *Server) Start(port string) error {
	addr := ":" + port
	s.logger.Info("API server listening on %s", addr)
	if err := s.router.Run(addr); err != nil {
		return fmt.Errorf("API server failed: %w", err)
	}
	return nil
}
