package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/residence-registry/internal/api/http/handlers"
	"github.com/spec-kit/residence-registry/internal/auth"
	"github.com/spec-kit/residence-registry/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Residents      *handlers.ResidentsHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.Middleware
	EnforceRoles   bool
}

// RegisterRoutes wires HTTP routes. The resource path stays /students for
// compatibility with existing registry clients, although the records are
// residents. Role enforcement is optional; without it the service trusts
// its caller and the login gate is purely client-side.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	students := app.Group("/students")
	if cfg.EnforceRoles && cfg.AuthMiddleware != nil {
		students.Use(cfg.AuthMiddleware.Handle)
		students.Get("/", cfg.Residents.List)
		mutations := students.Group("", auth.RequireRole(domain.RoleAdmin))
		mutations.Post("/", cfg.Residents.Create)
		mutations.Put("/:id", cfg.Residents.Update)
		mutations.Delete("/:id", cfg.Residents.Delete)
		return
	}

	students.Get("/", cfg.Residents.List)
	students.Post("/", cfg.Residents.Create)
	students.Put("/:id", cfg.Residents.Update)
	students.Delete("/:id", cfg.Residents.Delete)
}
