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

	"github.com/jhoicas/menu-inventory-api/internal/application/snapshot"
	"github.com/jhoicas/menu-inventory-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/menu-inventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/menu-inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/menu-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/menu-inventory-api/pkg/config"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
	"github.com/jhoicas/menu-inventory-api/pkg/menuid"
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
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplyMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	coll := postgres.NewMenuCollection(pool)
	listener := postgres.NewListener(pool)

	// Mirror de la colección + suscripción de cambios
	store := snapshot.New(coll, listener, log)
	go func() {
		if err := store.Run(ctx); err != nil {
			log.Error().Err(err).Msg("suscripción a la colección finalizada")
		}
	}()

	ids := menuid.New()
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := httpRouter.NewSessionManager(store, coll, ids, sessionTTL, log)

	menuUC := usecase.NewMenuUseCase(coll, log)
	reportUC := usecase.NewReportUseCase(store, infrapdf.NewMarotoReportGenerator())

	hub := httpRouter.NewHub(store, log)

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
		Title:    "Menu Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TableHandler: httpRouter.NewTableHandler(sessions, store),
		MenuHandler:  httpRouter.NewMenuHandler(sessions, menuUC, reportUC),
		Hub:          hub,
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
	cancel() // corta la suscripción; los refetch en vuelo no se esperan

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
