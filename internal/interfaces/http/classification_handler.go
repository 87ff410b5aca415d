package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/registry"
)

// ClassificationHandler administración de categorías de despesa/receita.
type ClassificationHandler struct {
	uc *registry.ClassificationUseCase
}

// NewClassificationHandler construye el handler.
func NewClassificationHandler(uc *registry.ClassificationUseCase) *ClassificationHandler {
	return &ClassificationHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         classifications
// @Produce      json
// @Param        limit   query  int  false  "máximo 200"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ClassificationResponse
// @Router       /api/classifications [get]
func (h *ClassificationHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	list, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(list)
}

// Get GET /api/classifications/:id
func (h *ClassificationHandler) Get(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         classifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClassificationRequest  true  "tipo (DESPESA|RECEITA), descricao"
// @Success      201  {object}  dto.ClassificationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/classifications [post]
func (h *ClassificationHandler) Create(c *fiber.Ctx) error {
	var in dto.ClassificationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/classifications/:id
func (h *ClassificationHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.ClassificationRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Deactivate DELETE /api/classifications/:id
func (h *ClassificationHandler) Deactivate(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Deactivate(c.UserContext(), id); err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate PATCH /api/classifications/:id/activate
func (h *ClassificationHandler) Activate(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Activate(c.UserContext(), id); err != nil {
		return respondError(c, err, "categoría no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
