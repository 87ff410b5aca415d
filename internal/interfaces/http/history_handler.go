package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/history"
)

// HistoryHandler consulta del historial de procesamientos.
type HistoryHandler struct {
	svc *history.Service
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// List godoc
// @Summary      Historial de procesamientos
// @Tags         history
// @Produce      json
// @Param        limit   query  int  false  "máximo 200"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   entity.ProcessingRecord
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	list, err := h.svc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(list)
}

// Get GET /api/history/:id
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	rec, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "registro no encontrado")
	}
	return c.JSON(rec)
}

// Delete DELETE /api/history/:id
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "registro no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear DELETE /api/history
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.svc.Clear(c.UserContext()); err != nil {
		return respondError(c, err, "")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
