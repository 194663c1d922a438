package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"drawcast/app"
	"drawcast/internal"
)

// OpsServer is the operational sidecar: health probe plus a rendered
// diagnostics report, kept off the main API port.
type OpsServer struct {
	router  *chi.Mux
	service *app.PredictionService
	logger  *internal.Logger
}

// NewOpsServer creates the ops router
func NewOpsServer(service *app.PredictionService) *OpsServer {
	s := &OpsServer{
		router:  chi.NewRouter(),
		service: service,
		logger:  internal.DefaultLogger,
	}

	s.router.Use(middleware.Recoverer)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/report", s.handleReport)
	return s
}

// Router exposes the chi mux for tests
func (s *OpsServer) Router() http.Handler {
	return s.router
}

// Start runs the ops server on the configured port
func (s *OpsServer) Start(port string) error {
	addr := ":" + port
	s.logger.Info("ops server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *OpsServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleReport renders the frequency report as HTML from its markdown
// source.
func (s *OpsServer) handleReport(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.BuildStats(r.Context())
	if err != nil {
		s.logger.Error("report generation failed: %v", err)
		http.Error(w, "failed to build stats", http.StatusInternalServerError)
		return
	}

	md := buildReport(stats)
	html := markdown.ToHTML([]byte(md), nil, nil)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
