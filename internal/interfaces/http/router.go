package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/grinder-parts-api/internal/application/analytics"
	"github.com/jhoicas/grinder-parts-api/internal/application/auth"
	"github.com/jhoicas/grinder-parts-api/internal/application/inventory"
	"github.com/jhoicas/grinder-parts-api/internal/application/report"
)

// HomePath destino de la raíz y de las rutas desconocidas.
const HomePath = "/api/dashboard/summary"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *auth.SessionStore
	Parts       *inventory.Store
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *report.ExportUseCase
}

// Router registra las rutas de la API. Debe llamarse después de registrar /health y /docs:
// al final agrega la redirección de las rutas desconocidas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login/registro solo sin sesión; logout y estado siempre disponibles
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Session)
	authGroup.Post("/register", RequireGuest(deps.Session), authHandler.Register)
	authGroup.Post("/login", RequireGuest(deps.Session), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren sesión activa)
	requireSession := RequireSession(deps.Session)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", requireSession, dashboardHandler.GetSummary)

	partHandler := NewPartHandler(deps.Parts, deps.ExportUC)
	api.Get("/categories", requireSession, partHandler.Categories)

	parts := api.Group("/parts", requireSession)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Get("/export", partHandler.Export)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Raíz y rutas desconocidas → dashboard
	redirectHome := func(c *fiber.Ctx) error {
		return c.Redirect(HomePath, fiber.StatusFound)
	}
	app.Get("/", redirectHome)
	app.Use(redirectHome)
}
