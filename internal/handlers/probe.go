package handlers

import (
	"github.com/gofiber/fiber/v3"

	"promptlink/internal/kvstore"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store kvstore.Storage
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(store kvstore.Storage) *ProbeHandler {
	return &ProbeHandler{store: store}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the share store is configured and reachable. A probe
// read of a key that never exists doubles as a connectivity check.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "storage not configured",
		})
	}

	if _, err := h.store.Get(KeyPrefix + "_readyz"); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "storage unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
