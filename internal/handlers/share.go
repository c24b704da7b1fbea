package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"promptlink/internal/config"
	"promptlink/internal/kvstore"
	"promptlink/internal/metrics"
	"promptlink/internal/shortcode"
	"promptlink/internal/validation"
)

// KeyPrefix namespaces share records in the key-value store.
const KeyPrefix = "share:"

// ShareTTL is the fixed lifetime of a stored share (90 days). Expiry is the
// store's native eviction; there is no cleanup job and no TTL refresh.
const ShareTTL = 90 * 24 * time.Hour

// ShareHandler handles the share store/retrieve endpoints.
type ShareHandler struct {
	store kvstore.Storage
	cfg   *config.Config
}

// NewShareHandler creates a new share handler. A nil store means the feature
// is unavailable and both endpoints answer 503.
func NewShareHandler(store kvstore.Storage, cfg *config.Config) *ShareHandler {
	return &ShareHandler{store: store, cfg: cfg}
}

// Create persists a share payload under a fresh short code.
//
// The payload is an open record: only the presence of a non-empty "prompt"
// string is validated, everything else is persisted verbatim so clients can
// add fields without a server change. Codes are not checked for collisions;
// a colliding write overwrites the earlier record.
func (h *ShareHandler) Create(c fiber.Ctx) error {
	if h.store == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Storage not configured")
	}

	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	prompt, _ := payload["prompt"].(string)
	if prompt == "" {
		return jsonError(c, fiber.StatusBadRequest, "prompt is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to serialize share payload", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to store share")
	}

	code := shortcode.New()
	if err := h.store.Set(KeyPrefix+code, raw, ShareTTL); err != nil {
		slog.Error("failed to write share", "code", code, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to store share")
	}

	metrics.RecordShareCreated()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"code": code,
		"url":  publicOrigin(c) + "/s/" + code,
	})
}

// Retrieve fetches a stored share by its code.
//
// Unknown, expired, and malformed codes all answer 404: the client cannot
// act differently on any of the three, so they are deliberately conflated.
func (h *ShareHandler) Retrieve(c fiber.Ctx) error {
	if h.store == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "Storage not configured")
	}

	code := c.Query("code")
	if code == "" {
		return jsonError(c, fiber.StatusBadRequest, "code is required")
	}
	if !validation.ValidateCode(code) {
		metrics.RecordShareLookup(metrics.OutcomeMiss)
		return jsonError(c, fiber.StatusNotFound, "Not found or expired")
	}

	raw, err := h.store.Get(KeyPrefix + code)
	if err != nil {
		slog.Error("failed to read share", "code", code, "error", err)
		metrics.RecordShareLookup(metrics.OutcomeError)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to retrieve share")
	}
	if len(raw) == 0 {
		metrics.RecordShareLookup(metrics.OutcomeMiss)
		return jsonError(c, fiber.StatusNotFound, "Not found or expired")
	}

	// The adapter hands back the raw stored bytes; parse exactly once here.
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.Error("stored share is not valid JSON", "code", code, "error", err)
		metrics.RecordShareLookup(metrics.OutcomeError)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to retrieve share")
	}

	metrics.RecordShareLookup(metrics.OutcomeHit)
	return c.JSON(payload)
}

// publicOrigin computes the public-facing origin for shareable URLs. A
// forwarded-host header wins so links are correct behind a reverse proxy;
// otherwise the request's own origin is used.
func publicOrigin(c fiber.Ctx) string {
	host := c.Get("X-Forwarded-Host")
	if host == "" {
		return c.BaseURL()
	}
	scheme := c.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + host
}
