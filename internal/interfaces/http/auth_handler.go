package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wims-scanner/internal/application/auth"
	"github.com/jhoicas/wims-scanner/internal/application/dto"
)

// AuthHandler expone el flujo de login y selección de bodega a la UI.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica contra el backend, persiste el token y devuelve las
// bodegas disponibles para el selector.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.GatewayLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	options, err := h.uc.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		return fail(c, err)
	}

	out := dto.GatewayLoginResponse{Warehouses: make([]dto.WarehouseOption, 0, len(options))}
	for _, opt := range options {
		out.Warehouses = append(out.Warehouses, dto.WarehouseOption{Label: opt.Name, Value: opt.ID})
	}
	return c.JSON(out)
}

// SelectWarehouse persiste la bodega elegida en el selector.
func (h *AuthHandler) SelectWarehouse(c *fiber.Ctx) error {
	var in dto.SelectWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SelectWarehouse(c.UserContext(), in.WarehouseID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Logout borra la sesión persistida.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
