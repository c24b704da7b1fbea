package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promptlink/internal/handlers"
	"promptlink/internal/kvstore"
)

// RegisterRoutes registers all application routes. A nil store disables the
// share endpoints (they answer 503) without affecting anything else.
func (s *Server) RegisterRoutes(store kvstore.Storage) {
	// Initialize handlers
	shareHandler := handlers.NewShareHandler(store, s.Cfg)
	pageHandler := handlers.NewPageHandler(store, s.Cfg)
	probeHandler := handlers.NewProbeHandler(store)

	// Share API
	s.App.Post("/api/share", shareHandler.Create)
	s.App.Get("/api/share", shareHandler.Retrieve)

	// Viewer pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/s/:code", pageHandler.Viewer)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
