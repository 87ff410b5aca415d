// Package ledger materializa movimientos, parcelas y vínculos de categoría,
// y ofrece el mantenimiento posterior de esos registros.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// Pasos de la materialización (MaterializationError.Step).
const (
	StepMovement        = "movimento"
	StepClassifications = "classificacoes"
	StepInstallments    = "parcelas"
	StepSchema          = "esquema"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios del libro atados a ella.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		movements repository.MovementRepository,
		installments repository.InstallmentRepository,
		links repository.MovementClassificationRepository,
	) error) error
}

// MovementInput datos del movimiento a crear.
type MovementInput struct {
	Direction      entity.Direction
	PersonID       int64
	DocumentNumber string
	IssueDate      string // DD/MM/YYYY o YYYY-MM-DD
	TotalValue     decimal.Decimal
	Note           string
}

// InstallmentInput parcela extraída; los campos nil se completan al planificar.
type InstallmentInput struct {
	Number  *int
	DueDate string
	Value   *decimal.Decimal
}

// Request todo lo que se escribe en una única transacción.
type Request struct {
	Movement          MovementInput
	Installments      []InstallmentInput
	ClassificationIDs []int64
}

// Outcome IDs generados por la materialización.
type Outcome struct {
	MovementID     int64
	DocumentColumn string
	// Linked una entrada por categoría distinta; Created=false si el vínculo ya existía.
	Linked       []LinkResult
	Installments []*entity.Installment
	Warnings     []string
}

// LinkResult resultado de vincular una categoría.
type LinkResult struct {
	ClassificationID int64
	Created          bool
}

// InstallmentIDs IDs de las parcelas creadas, en orden.
func (o *Outcome) InstallmentIDs() []int64 {
	ids := make([]int64, 0, len(o.Installments))
	for _, i := range o.Installments {
		ids = append(ids, i.ID)
	}
	return ids
}

// Materializer escribe movimiento, vínculos y parcelas como una unidad.
type Materializer struct {
	tx    TxRunner
	probe *SchemaProbe
	now   func() time.Time
	log   *logger.Logger
}

// NewMaterializer crea el materializador.
func NewMaterializer(tx TxRunner, probe *SchemaProbe, log *logger.Logger) *Materializer {
	if log == nil {
		log = logger.Nop()
	}
	return &Materializer{tx: tx, probe: probe, now: time.Now, log: log.Component("ledger")}
}

// WithClock fija el reloj usado para fechas por defecto.
func (m *Materializer) WithClock(now func() time.Time) *Materializer {
	m.now = now
	return m
}

// Materialize crea el movimiento, vincula las categorías y crea las parcelas en una transacción.
// Los errores se devuelven como *domain.MaterializationError con el paso que falló.
func (m *Materializer) Materialize(ctx context.Context, req Request) (*Outcome, error) {
	caps, err := m.probe.Capabilities(ctx)
	if err != nil {
		return nil, &domain.MaterializationError{Step: StepSchema, Err: err}
	}
	if !req.Movement.Direction.Valid() {
		return nil, &domain.MaterializationError{Step: StepMovement,
			Err: fmt.Errorf("%w: dirección %q", domain.ErrInvalidInput, req.Movement.Direction)}
	}

	now := m.now()
	out := &Outcome{DocumentColumn: caps.DocumentColumn}

	issue, ok := ParseDate(req.Movement.IssueDate, now)
	if !ok {
		out.Warnings = append(out.Warnings, fmt.Sprintf("data de emissão %q inválida, usando a data de hoje", req.Movement.IssueDate))
		m.log.Warn().Str("date", req.Movement.IssueDate).Msg("fecha de emisión inválida, se usa hoy")
	}
	plan, warnings, err := PlanInstallments(req.Movement.TotalValue, req.Installments, now)
	if err != nil {
		return nil, &domain.MaterializationError{Step: StepInstallments, Err: err}
	}
	out.Warnings = append(out.Warnings, warnings...)

	err = m.tx.RunLedger(ctx, func(
		movements repository.MovementRepository,
		installments repository.InstallmentRepository,
		links repository.MovementClassificationRepository,
	) error {
		mov := &entity.Movement{
			Direction:      req.Movement.Direction,
			PersonID:       req.Movement.PersonID,
			DocumentNumber: req.Movement.DocumentNumber,
			IssueDate:      issue,
			TotalValue:     req.Movement.TotalValue,
			Note:           req.Movement.Note,
			Active:         true,
		}
		if err := movements.Create(ctx, mov, caps.DocumentColumn); err != nil {
			return &domain.MaterializationError{Step: StepMovement, Err: err}
		}
		out.MovementID = mov.ID

		seen := make(map[int64]struct{}, len(req.ClassificationIDs))
		for _, cid := range req.ClassificationIDs {
			if _, dup := seen[cid]; dup {
				continue
			}
			seen[cid] = struct{}{}
			created, err := linkClassification(ctx, links, mov.ID, cid, caps.LinkHasValue)
			if err != nil {
				return &domain.MaterializationError{Step: StepClassifications, Err: err}
			}
			out.Linked = append(out.Linked, LinkResult{ClassificationID: cid, Created: created})
		}

		for _, p := range plan {
			inst := &entity.Installment{
				MovementID: mov.ID,
				Identifier: fmt.Sprintf("%d_%d", mov.ID, p.Number),
				Number:     p.Number,
				DueDate:    p.DueDate,
				Value:      p.Value,
				Status:     entity.InstallmentOpen,
				Active:     true,
			}
			if err := installments.Create(ctx, inst); err != nil {
				return &domain.MaterializationError{Step: StepInstallments, Err: err}
			}
			out.Installments = append(out.Installments, inst)
		}
		return nil
	})
	if err != nil {
		var matErr *domain.MaterializationError
		if !errors.As(err, &matErr) {
			err = &domain.MaterializationError{Step: StepMovement, Err: err}
		}
		return nil, err
	}

	m.log.Info().
		Int64("movement_id", out.MovementID).
		Int("installments", len(out.Installments)).
		Int("links", len(out.Linked)).
		Msg("movimiento materializado")
	return out, nil
}

// LinkClassification vincula una categoría a un movimiento existente, sin duplicar.
func (m *Materializer) LinkClassification(ctx context.Context, movementID, classificationID int64) (bool, error) {
	caps, err := m.probe.Capabilities(ctx)
	if err != nil {
		return false, &domain.MaterializationError{Step: StepSchema, Err: err}
	}
	var created bool
	err = m.tx.RunLedger(ctx, func(
		_ repository.MovementRepository,
		_ repository.InstallmentRepository,
		links repository.MovementClassificationRepository,
	) error {
		var err error
		created, err = linkClassification(ctx, links, movementID, classificationID, caps.LinkHasValue)
		return err
	})
	if err != nil {
		return false, &domain.MaterializationError{Step: StepClassifications, Err: err}
	}
	return created, nil
}

// linkClassification inserta el par solo si no existe. El valor asignado es 0 cuando hay columna.
func linkClassification(ctx context.Context, links repository.MovementClassificationRepository, movementID, classificationID int64, withValue bool) (bool, error) {
	exists, err := links.Exists(ctx, movementID, classificationID)
	if err != nil {
		return false, fmt.Errorf("verificar vínculo: %w", err)
	}
	if exists {
		return false, nil
	}
	link := &entity.MovementClassification{MovementID: movementID, ClassificationID: classificationID}
	if withValue {
		link.Value = decimal.NewNullDecimal(decimal.Zero)
	}
	if err := links.Create(ctx, link, withValue); err != nil {
		return false, fmt.Errorf("crear vínculo: %w", err)
	}
	return true, nil
}
