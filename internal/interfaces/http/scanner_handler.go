package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wims-scanner/internal/application/dto"
	"github.com/jhoicas/wims-scanner/internal/application/reconcile"
)

// ScannerHandler expone la máquina de reconciliación al colaborador de UI:
// estado y veredicto actuales más el juego de comandos del ciclo de escaneo.
type ScannerHandler struct {
	machine *reconcile.Machine
}

// NewScannerHandler construye el handler.
func NewScannerHandler(machine *reconcile.Machine) *ScannerHandler {
	return &ScannerHandler{machine: machine}
}

// State devuelve el estado y veredicto actuales de la máquina.
func (h *ScannerHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.snapshot())
}

// StartScan inicia un ciclo de escaneo.
func (h *ScannerHandler) StartScan(c *fiber.Ctx) error {
	if err := h.machine.StartScan(); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.snapshot())
}

// CancelScan aborta el ciclo en curso.
func (h *ScannerHandler) CancelScan(c *fiber.Ctx) error {
	if err := h.machine.CancelScan(); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.snapshot())
}

// Payload entrega la cadena decodificada del escáner. La resolución queda en
// vuelo; la UI sondea /state hasta ver resolved o error.
func (h *ScannerHandler) Payload(c *fiber.Ctx) error {
	var in dto.ScanPayloadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Data == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data requerido"})
	}
	// La resolución sobrevive a la petición HTTP; la regla de reemplazo por
	// etiqueta de la máquina es el mecanismo de cancelación.
	if err := h.machine.PayloadReceived(context.Background(), in.Data); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.snapshot())
}

// SubmitAdd crea el producto escaneado con la cantidad y el precio
// capturados por la UI.
func (h *ScannerHandler) SubmitAdd(c *fiber.Ctx) error {
	var in dto.SubmitAddRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.machine.SubmitAdd(context.Background(), in.Quantity, in.Price); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.snapshot())
}

// SubmitEdit actualiza el producto encontrado con los campos capturados.
func (h *ScannerHandler) SubmitEdit(c *fiber.Ctx) error {
	var in dto.SubmitEditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fields := reconcile.EditFields{
		Description: in.ProductDescription,
		Price:       in.Price,
		Quantity:    in.Quantity,
	}
	if err := h.machine.SubmitEdit(context.Background(), fields); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.snapshot())
}

// SubmitDelete elimina el producto encontrado.
func (h *ScannerHandler) SubmitDelete(c *fiber.Ctx) error {
	if err := h.machine.SubmitDelete(context.Background()); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(h.snapshot())
}

func (h *ScannerHandler) snapshot() dto.ScannerStateResponse {
	snap := h.machine.Snapshot()
	resp := dto.ScannerStateResponse{
		State:   snap.State.String(),
		Verdict: snap.Verdict.Kind.String(),
	}
	if snap.Verdict.Product != nil {
		wire := dto.FromProduct(*snap.Verdict.Product)
		resp.Product = &wire
	}
	if snap.Pending != nil {
		resp.Mutation = snap.Pending.Kind.String()
	}
	if snap.Err != nil {
		resp.LastError = snap.Err.Error()
	}
	return resp
}
