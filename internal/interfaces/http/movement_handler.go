package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// MovementHandler consulta y mantenimiento de movimientos y parcelas.
type MovementHandler struct {
	uc *ledger.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "máximo 200"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	list, err := h.uc.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err, "")
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de movimiento
// @Tags         movements
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.MovementDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) Get(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	d, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	return c.JSON(toMovementDetailResponse(d))
}

// Update godoc
// @Summary      Editar movimiento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.UpdateMovementRequest  true  "numeroDocumento, dataEmissao, observacao"
// @Success      200  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.UpdateMovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	m, err := h.uc.Update(c.UserContext(), id, ledger.MovementUpdate{
		DocumentNumber: in.DocumentNumber,
		IssueDate:      in.IssueDate,
		Note:           in.Note,
	})
	if err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	return c.JSON(toMovementResponse(m))
}

// Delete DELETE /api/movements/:id (baja lógica del movimiento y sus parcelas)
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Voucher godoc
// @Summary      Comprobante PDF del movimiento
// @Tags         movements
// @Produce      application/pdf
// @Param        id   path  int  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/pdf [get]
func (h *MovementHandler) Voucher(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	pdf, err := h.uc.Voucher(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="movimento-%d.pdf"`, id))
	return c.Send(pdf)
}

// LinkClassification POST /api/movements/:id/classifications/:classificationId
func (h *MovementHandler) LinkClassification(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	classID, perr := strconv.ParseInt(c.Params("classificationId"), 10, 64)
	if perr != nil || classID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "classificationId inválido"})
	}
	created, err := h.uc.LinkClassification(c.UserContext(), id, classID)
	if err != nil {
		return respondError(c, err, "movimiento o categoría no encontrado")
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.LinkClassificationResponse{MovementID: id, ClassificationID: classID, Created: created})
}

// Settle godoc
// @Summary      Dar de baja (pagar) una parcela
// @Tags         installments
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la parcela"
// @Param        body  body  dto.SettleInstallmentRequest  false "dataPagamento (hoy si vacío), valorPago (valor de la parcela si vacío)"
// @Success      200  {object}  dto.InstallmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/installments/{id}/settle [post]
func (h *MovementHandler) Settle(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.SettleInstallmentRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	var paid *decimal.Decimal
	if in.PaidValue != "" {
		v, derr := decimal.NewFromString(in.PaidValue)
		if derr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valorPago inválido"})
		}
		paid = &v
	}
	inst, err := h.uc.SettleInstallment(c.UserContext(), id, in.PaidDate, paid)
	if err != nil {
		return respondError(c, err, "parcela no encontrada")
	}
	return c.JSON(toInstallmentResponse(inst))
}

// ── mappers ───────────────────────────────────────────────────────────────────

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		Direction:      string(m.Direction),
		PersonID:       m.PersonID,
		DocumentNumber: m.DocumentNumber,
		IssueDate:      m.IssueDate.Format(dateLayout),
		TotalValue:     m.TotalValue.StringFixed(2),
		Note:           m.Note,
		CreatedAt:      m.CreatedAt,
	}
}

func toInstallmentResponse(i *entity.Installment) dto.InstallmentResponse {
	out := dto.InstallmentResponse{
		ID:         i.ID,
		MovementID: i.MovementID,
		Identifier: i.Identifier,
		Number:     i.Number,
		DueDate:    i.DueDate.Format(dateLayout),
		Value:      i.Value.StringFixed(2),
		Status:     string(i.Status),
	}
	if i.PaidAt != nil {
		s := i.PaidAt.Format(dateLayout)
		out.PaidAt = &s
	}
	if i.PaidValue.Valid {
		s := i.PaidValue.Decimal.StringFixed(2)
		out.PaidValue = &s
	}
	return out
}

func toMovementDetailResponse(d *ledger.MovementDetail) dto.MovementDetailResponse {
	out := dto.MovementDetailResponse{
		MovementResponse: toMovementResponse(d.Movement),
		Installments:     make([]dto.InstallmentResponse, 0, len(d.Installments)),
		Classifications:  make([]dto.ClassificationResponse, 0, len(d.Classifications)),
	}
	if p := d.Person; p != nil {
		out.Person = &dto.PersonResponse{
			ID: p.ID, Role: string(p.Role), LegalName: p.LegalName, TradeName: p.TradeName,
			TaxID: p.TaxID, Active: p.Active, CreatedAt: p.CreatedAt,
		}
	}
	for _, i := range d.Installments {
		out.Installments = append(out.Installments, toInstallmentResponse(i))
	}
	for _, c := range d.Classifications {
		out.Classifications = append(out.Classifications, dto.ClassificationResponse{
			ID: c.ID, Kind: string(c.Kind), Label: c.Label, Active: c.Active,
		})
	}
	return out
}
