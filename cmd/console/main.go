package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/infield-hq/infield-console/internal/application/controller"
	"github.com/infield-hq/infield-console/internal/application/ports"
	"github.com/infield-hq/infield-console/internal/application/session"
	"github.com/infield-hq/infield-console/internal/infrastructure/localstore"
	"github.com/infield-hq/infield-console/internal/infrastructure/memory"
	"github.com/infield-hq/infield-console/internal/infrastructure/rest"
	httpRouter "github.com/infield-hq/infield-console/internal/interfaces/http"
	"github.com/infield-hq/infield-console/pkg/config"
	"github.com/infield-hq/infield-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("mock", cfg.API.UseMock).
		Msg("iniciando consola")

	kv, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de sesión")
	}

	// Costura mock/real: un solo punto de selección, por inyección de
	// constructores. Del router hacia arriba nadie sabe en qué modo corre.
	var (
		adminAPI       ports.AdminAPI
		catalogAPI     ports.CatalogAPI
		authAPI        ports.AuthAPI
		chatAPI        ports.ChatAPI
		tokenHolder    session.TokenHolder
		middlewareJWT  string
		backendBaseURL string
	)
	if cfg.API.UseMock {
		store := memory.NewStore()
		adminAPI = memory.NewAdminAPI(store)
		catalogAPI = memory.NewCatalogAPI(store)
		authAPI = memory.NewAuthAPI(store, memory.TokenConfig{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		})
		chatAPI = memory.NewChatAPI(store)
		tokenHolder = session.NopTokenHolder{}
		// Los tokens se emiten localmente: el gateway puede validar la firma.
		middlewareJWT = cfg.JWT.Secret
	} else {
		client := rest.NewClient(rest.ClientConfig{BaseURL: cfg.Backend.BaseURL})
		adminAPI = rest.NewAdminAPI(client)
		catalogAPI = rest.NewCatalogAPI(client)
		authAPI = rest.NewAuthAPI(client)
		chatAPI = rest.NewChatAPI(client)
		tokenHolder = client
		backendBaseURL = cfg.Backend.BaseURL
	}

	sess := session.NewManager(authAPI, kv, tokenHolder)
	if sess.Restore() {
		if user, ok := sess.CurrentUser(); ok {
			log.Info().Str("email", user.Email).Msg("sesión restaurada")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Infield Console",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:        sess,
		Accounts:       controller.NewAccountsController(adminAPI),
		Projects:       controller.NewProjectsController(adminAPI),
		Users:          controller.NewUsersController(adminAPI),
		Catalog:        controller.NewCatalogController(adminAPI, catalogAPI),
		Chat:           controller.NewChatController(chatAPI),
		JWTSecret:      middlewareJWT,
		BackendBaseURL: backendBaseURL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
