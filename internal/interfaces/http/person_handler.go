package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/registry"
)

// PersonHandler administración de pessoas (proveedores, facturados, clientes).
type PersonHandler struct {
	uc *registry.PersonUseCase
}

// NewPersonHandler construye el handler.
func NewPersonHandler(uc *registry.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// List godoc
// @Summary      Listar personas
// @Tags         persons
// @Produce      json
// @Param        limit   query  int  false  "máximo 200"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/persons [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
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

// Get godoc
// @Summary      Obtener persona
// @Tags         persons
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [get]
func (h *PersonHandler) Get(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	p, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "persona no encontrada")
	}
	return c.JSON(p)
}

// Create godoc
// @Summary      Crear persona
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonRequest  true  "tipo, razaoSocial, cnpjCpf"
// @Success      201  {object}  dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/persons [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update godoc
// @Summary      Editar persona
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID"
// @Param        body  body  dto.UpdatePersonRequest  true  "datos"
// @Success      200  {object}  dto.PersonResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/persons/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.UpdatePersonRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, "persona no encontrada")
	}
	return c.JSON(p)
}

// Deactivate DELETE /api/persons/:id (baja lógica)
func (h *PersonHandler) Deactivate(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Deactivate(c.UserContext(), id); err != nil {
		return respondError(c, err, "persona no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Activate PATCH /api/persons/:id/activate
func (h *PersonHandler) Activate(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Activate(c.UserContext(), id); err != nil {
		return respondError(c, err, "persona no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
