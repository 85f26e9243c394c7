package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session  *session.Manager
	Accounts *controller.AccountsController
	Projects *controller.ProjectsController
	Users    *controller.UsersController
	Catalog  *controller.CatalogController
	Chat     *controller.ChatController

	// JWTSecret habilita la validación de firma en el middleware; vacío en
	// modo real (el token lo valida el backend).
	JWTSecret string
	// BackendBaseURL destino del proxy /api/*; vacío deshabilita el proxy
	// (modo mock).
	BackendBaseURL string
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	// Proxy same-origin hacia el backend real.
	if deps.BackendBaseURL != "" {
		app.All("/api/*", BackendProxy(deps.BackendBaseURL))
	}

	console := app.Group("/console")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Session)
	console.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := console.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Cuentas
	accountsHandler := NewAccountsHandler(deps.Accounts)
	accounts := protected.Group("/accounts")
	accounts.Get("/", accountsHandler.List)
	accounts.Get("/export", accountsHandler.Export)
	accounts.Post("/", accountsHandler.Create)
	accounts.Put("/:id", accountsHandler.Update)
	accounts.Delete("/:id", accountsHandler.Delete)

	// Proyectos (listados bajo la cuenta)
	projectsHandler := NewProjectsHandler(deps.Projects)
	accounts.Get("/:code/projects", projectsHandler.List)
	accounts.Get("/:code/projects/export", projectsHandler.Export)
	accounts.Get("/:code", accountsHandler.Get)
	projects := protected.Group("/projects")
	projects.Post("/", projectsHandler.Create)
	projects.Put("/:id", projectsHandler.Update)
	projects.Delete("/:id", projectsHandler.Delete)

	// Usuarios
	usersHandler := NewUsersHandler(deps.Users)
	users := protected.Group("/users")
	users.Get("/", usersHandler.List)
	users.Get("/export", usersHandler.Export)

	// Catálogo (cadena dependiente con estado)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catalog := protected.Group("/catalog")
	catalog.Get("/", catalogHandler.Snapshot)
	catalog.Post("/accounts", catalogHandler.LoadAccounts)
	catalog.Post("/account", catalogHandler.SelectAccount)
	catalog.Post("/project", catalogHandler.SelectProject)
	catalog.Post("/roles", catalogHandler.CreateRoles)
	catalog.Put("/roles", catalogHandler.UpdateRoles)
	catalog.Delete("/roles", catalogHandler.DeleteRoles)
	catalog.Post("/designations", catalogHandler.CreateDesignations)
	catalog.Put("/designations", catalogHandler.UpdateDesignations)
	catalog.Delete("/designations", catalogHandler.DeleteDesignations)

	// Agente de IA
	aiHandler := NewAIHandler(deps.Chat)
	ai := protected.Group("/ai")
	ai.Post("/chat", aiHandler.Chat)
	ai.Get("/status", aiHandler.Status)
	ai.Get("/transcript", aiHandler.Transcript)
	ai.Delete("/session", aiHandler.Reset)
}
