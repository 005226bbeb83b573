package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wims-scanner/internal/application/dto"
	"github.com/jhoicas/wims-scanner/internal/domain"
)

// statusFor mapea la taxonomía de errores de dominio a códigos HTTP de la
// pasarela local. Los errores locales (validación, parseo, operación
// ilegal) no implican llamada de red; los de backend se reportan como 502.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrIllegalOperation):
		return fiber.StatusConflict, "ILLEGAL_OPERATION"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.Is(err, domain.ErrParse):
		return fiber.StatusUnprocessableEntity, "PARSE_ERROR"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return fiber.StatusNotFound, "WAREHOUSE_NOT_FOUND"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"
	case errors.Is(err, domain.ErrMalformedResponse):
		return fiber.StatusBadGateway, "MALFORMED_RESPONSE"
	case errors.Is(err, domain.ErrNetwork):
		return fiber.StatusBadGateway, "NETWORK"
	}
	if _, ok := domain.IsRejected(err); ok {
		return fiber.StatusBadGateway, "REJECTED"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

func fail(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
