package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equiflow/internal/api/http/handlers"
	"github.com/spec-kit/equiflow/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Inventory      *handlers.InventoryHandler
	Reservations   *handlers.ReservationsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Get("/users", cfg.Auth.ListUsers)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	protected.Get("/items", cfg.Inventory.ListItems)
	protected.Post("/items/recommendations", cfg.Inventory.Recommend)

	protected.Get("/reservations", cfg.Reservations.List)
	protected.Post("/reservations", cfg.Reservations.Create)
	protected.Post("/reservations/:id/cancel", cfg.Reservations.Cancel)
	protected.Post("/reservations/:id/return", cfg.Reservations.Return)

	admin := protected.Group("/admin", auth.RequireAdmin())
	admin.Post("/items", cfg.Admin.CreateItem)
	admin.Put("/items/:id", cfg.Admin.UpdateItem)
	admin.Delete("/items/:id", cfg.Admin.DeleteItem)

	admin.Get("/categories", cfg.Admin.ListCategories)
	admin.Post("/categories", cfg.Admin.CreateCategory)
	admin.Delete("/categories/:name", cfg.Admin.DeleteCategory)

	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/users", cfg.Admin.CreateUser)
	admin.Put("/users/:id", cfg.Admin.UpdateUser)
	admin.Post("/users/:id/password/reset", cfg.Admin.ResetUserPassword)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)

	admin.Get("/reservations", cfg.Admin.ListReservations)
	admin.Post("/reservations/:id/cancel", cfg.Admin.CancelReservation)

	admin.Get("/export", cfg.Admin.Export)
	admin.Post("/import", cfg.Admin.Import)
}
