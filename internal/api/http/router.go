package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tokengate/ticketing-service/internal/api/http/handlers"
	"github.com/tokengate/ticketing-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Staff          *handlers.StaffHandler
	Events         *handlers.EventsHandler
	Tickets        *handlers.TicketsHandler
	Checkin        *handlers.CheckinHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Post("/auth/staff/login", cfg.Staff.Login)

	v1 := app.Group("/v1")

	v1.Post("/users/resolve", cfg.Users.Resolve)

	v1.Post("/events", cfg.Events.Create)
	v1.Get("/events", cfg.Events.List)
	v1.Get("/events/:id", cfg.Events.Get)
	v1.Post("/events/:id/publish", cfg.Events.Publish)
	v1.Post("/events/:id/templates", cfg.Events.CreateTemplate)
	v1.Get("/events/:id/templates", cfg.Events.ListTemplates)

	v1.Post("/tickets/mint", cfg.Tickets.Mint)
	v1.Post("/tickets/transfer", cfg.Tickets.Transfer)
	v1.Get("/tickets", cfg.Tickets.List)
	v1.Get("/tickets/:tokenId", cfg.Tickets.Get)
	v1.Post("/tickets/:tokenId/burn", cfg.Tickets.Burn)
	v1.Post("/tickets/:tokenId/cancel", cfg.Tickets.Cancel)
	v1.Get("/tickets/:tokenId/transactions", cfg.Tickets.Transactions)

	// Validation stays open so gate scanners keep working through auth
	// hiccups; confirmation and the admission trail require staff tokens.
	v1.Post("/checkin/validate", cfg.Checkin.Validate)

	staffOnly := v1.Group("", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	staffOnly.Post("/checkin/confirm", cfg.Checkin.Confirm)
	staffOnly.Get("/events/:id/checkin-logs", cfg.Checkin.Logs)
}
