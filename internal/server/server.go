// Package server exposes the dashboard pipeline over HTTP. The web UI shell
// itself lives elsewhere; this is the interface it consumes.
package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/config"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/importer"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/intelligence"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/llm"
)

// Server holds the session-scoped dataset snapshot and the question
// pipeline. One session at a time; the mutex only guards the snapshot swap
// on re-upload, never the core transforms.
type Server struct {
	router *gin.Engine
	cfg    config.Config
	answer *intelligence.AnswerService

	mu      sync.RWMutex
	dataset *domain.Dataset
	issues  []importer.Issue
}

// New wires the HTTP surface. A nil client disables the model path; the
// rule-based interpreter and unavailable-answer handling still work.
func New(cfg config.Config, client llm.Client) *Server {
	interp := intelligence.NewInterpreter(client)

	s := &Server{
		router: gin.Default(),
		cfg:    cfg,
		answer: intelligence.NewAnswerService(client, interp, cfg.Context.BudgetChars),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = s.cfg.Upload.MaxBytes

	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/datasets", s.handleUpload)
		api.GET("/overview", s.handleOverview)
		api.GET("/gantt", s.handleGantt)
		api.GET("/counts/:dimension", s.handleCounts)
		api.GET("/issues", s.handleIssues)
		api.POST("/ask", s.handleAsk)
	}
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Server.Address())
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// snapshot returns the current dataset, or nil when none is loaded.
func (s *Server) snapshot() (*domain.Dataset, []importer.Issue) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset, s.issues
}

// replace swaps the session dataset wholesale.
func (s *Server) replace(ds *domain.Dataset, issues []importer.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.issues = issues
}
