package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Bhumika158/SignSegmentationUI/internal/handler"
	"github.com/Bhumika158/SignSegmentationUI/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Validation *handler.ValidationHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Root banner and health checks (outside the API group)
	app.Get("/", h.Health.Root)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	submitLimit := middleware.NewSubmitRateLimiter()
	deleteLimit := middleware.NewDeleteRateLimiter()

	// API routes
	api := app.Group("/api")

	api.Get("/validations", h.Validation.GetAll)
	api.Post("/validations", h.Validation.Save, submitLimit.Handler())
	api.Get("/validations/:videoId", h.Validation.GetByVideo)
	api.Delete("/validations/:videoId", h.Validation.Delete, deleteLimit.Handler())

	api.Get("/status/:videoId", h.Validation.GetStatus)
	api.Get("/stats", h.Validation.GetStats)
}
