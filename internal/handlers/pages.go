package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"promptlink/internal/config"
	"promptlink/internal/kvstore"
	"promptlink/internal/metrics"
	"promptlink/internal/validation"
)

// PageHandler renders the server-side viewer pages.
type PageHandler struct {
	store kvstore.Storage
	cfg   *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(store kvstore.Storage, cfg *config.Config) *PageHandler {
	return &PageHandler{store: store, cfg: cfg}
}

// Index renders the landing page.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":           "PromptLink",
		"StoreConfigured": h.store != nil,
	})
}

// Viewer renders a stored share. The same not-found page covers unknown,
// expired, and malformed codes.
func (h *PageHandler) Viewer(c fiber.Ctx) error {
	if h.store == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Sharing is not configured on this server")
	}

	code := c.Params("code")
	if !validation.ValidateCode(code) {
		metrics.RecordShareLookup(metrics.OutcomeMiss)
		return fiber.NewError(fiber.StatusNotFound, "This link is invalid or has expired")
	}

	raw, err := h.store.Get(KeyPrefix + code)
	if err != nil {
		slog.Error("failed to read share for viewer", "code", code, "error", err)
		metrics.RecordShareLookup(metrics.OutcomeError)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load this link")
	}
	if len(raw) == 0 {
		metrics.RecordShareLookup(metrics.OutcomeMiss)
		return fiber.NewError(fiber.StatusNotFound, "This link is invalid or has expired")
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.Error("stored share is not valid JSON", "code", code, "error", err)
		metrics.RecordShareLookup(metrics.OutcomeError)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load this link")
	}

	metrics.RecordShareLookup(metrics.OutcomeHit)

	prompt, _ := payload["prompt"].(string)
	transcript, _ := payload["transcript"].(string)
	modes, _ := payload["modes"].(string)

	var created string
	if ts, ok := payload["timestamp"].(float64); ok {
		created = time.UnixMilli(int64(ts)).UTC().Format("2006-01-02 15:04 UTC")
	}

	return c.Render("viewer", fiber.Map{
		"Title":      "Shared Prompt",
		"Code":       code,
		"Prompt":     prompt,
		"Transcript": transcript,
		"Modes":      modes,
		"Created":    created,
	})
}
