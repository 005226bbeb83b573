package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wims-scanner/internal/application/auth"
	"github.com/jhoicas/wims-scanner/internal/application/reconcile"
)

// RouterDeps dependencias para la pasarela local.
type RouterDeps struct {
	Machine *reconcile.Machine
	AuthUC  *auth.UseCase
}

// Router registra las rutas de la pasarela del colaborador de UI.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login y selección de bodega
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/warehouse", authHandler.SelectWarehouse)
	authGroup.Post("/logout", authHandler.Logout)

	// Ciclo de escaneo y mutaciones
	scanner := api.Group("/scanner")
	scannerHandler := NewScannerHandler(deps.Machine)
	scanner.Get("/state", scannerHandler.State)
	scanner.Post("/scan/start", scannerHandler.StartScan)
	scanner.Post("/scan/cancel", scannerHandler.CancelScan)
	scanner.Post("/scan/payload", scannerHandler.Payload)
	scanner.Post("/product/add", scannerHandler.SubmitAdd)
	scanner.Post("/product/edit", scannerHandler.SubmitEdit)
	scanner.Post("/product/delete", scannerHandler.SubmitDelete)
}
