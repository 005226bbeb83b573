package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/wims-scanner/internal/application/auth"
	"github.com/jhoicas/wims-scanner/internal/application/reconcile"
	"github.com/jhoicas/wims-scanner/internal/infrastructure/session"
	"github.com/jhoicas/wims-scanner/internal/infrastructure/wims"
	httpRouter "github.com/jhoicas/wims-scanner/internal/interfaces/http"
	"github.com/jhoicas/wims-scanner/pkg/config"
	"github.com/jhoicas/wims-scanner/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.WIMS.APIBaseURL).
		Msg("iniciando escáner WIMS")

	store, err := session.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de sesión")
	}
	defer store.Close()

	client := wims.NewClient(cfg.WIMS.APIBaseURL, cfg.WIMS.AuthBaseURL)
	machine := reconcile.New(client, client, store, reconcile.NewLogEvents(log))
	authUC := auth.NewUseCase(client, client, store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Machine: machine,
		AuthUC:  authUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando pasarela...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
