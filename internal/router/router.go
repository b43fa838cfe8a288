package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/leadscope/leadscope-go/internal/handler"
	"github.com/leadscope/leadscope-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Lead   *handler.LeadHandler
	Facet  *handler.FacetHandler
	Stats  *handler.StatsHandler
	Export *handler.ExportHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	queryLimiter := middleware.NewQueryRateLimiter()
	exportLimiter := middleware.NewExportRateLimiter()

	// Lead routes — export is registered before the handle param route so
	// the literal segment wins
	api.Get("/leads", h.Lead.List, queryLimiter.Handler())
	api.Get("/leads/export", h.Export.Export, exportLimiter.Handler())
	api.Get("/leads/:handle", h.Lead.GetByHandle, queryLimiter.Handler())

	// Facet routes
	api.Get("/facets", h.Facet.Get, queryLimiter.Handler())

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, queryLimiter.Handler())
}
