package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

const pingTimeout = 3 * time.Second

type HealthHandler struct {
	store   store.Store
	startAt time.Time
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{
		store:   st,
		startAt: time.Now(),
	}
}

// Root handles GET / — API banner with backend connectivity, keyed by the
// active backend's name so the reviewer UI can show which store it talks to.
func (h *HealthHandler) Root(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), pingTimeout)
	defer cancel()

	backendStatus := "connected"
	if err := h.store.Ping(ctx); err != nil {
		backendStatus = "disconnected"
	}

	return c.JSON(fiber.Map{
		"message":      "Sign Segmentation Validator API",
		"status":       "running",
		h.store.Name(): backendStatus,
	})
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with a store check.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	storeCheck := fiber.Map{
		"backend":    h.store.Name(),
		"status":     "up",
		"latency_ms": latency,
	}
	overallStatus := "healthy"
	if err != nil {
		storeCheck["status"] = "down"
		storeCheck["error"] = "connection failed"
		overallStatus = "degraded"
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         fiber.Map{"store": storeCheck},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
