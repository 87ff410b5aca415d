package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// MovementDetail movimiento con su contraparte, parcelas y categorías vinculadas.
type MovementDetail struct {
	Movement        *entity.Movement
	Person          *entity.Person
	Installments    []*entity.Installment
	Links           []*entity.MovementClassification
	Classifications []*entity.Classification
}

// VoucherRenderer genera el comprobante PDF de un movimiento.
type VoucherRenderer interface {
	RenderVoucher(d *MovementDetail) ([]byte, error)
}

// MovementUpdate campos editables; nil = sin cambio.
type MovementUpdate struct {
	DocumentNumber *string
	IssueDate      *string
	Note           *string
}

// MovementUseCase mantenimiento de movimientos y parcelas ya materializados.
type MovementUseCase struct {
	tx              TxRunner
	movements       repository.MovementRepository
	installments    repository.InstallmentRepository
	links           repository.MovementClassificationRepository
	persons         repository.PersonRepository
	classifications repository.ClassificationRepository
	probe           *SchemaProbe
	materializer    *Materializer
	renderer        VoucherRenderer
	now             func() time.Time
	log             *logger.Logger
}

// MovementDeps dependencias de MovementUseCase.
type MovementDeps struct {
	Tx              TxRunner
	Movements       repository.MovementRepository
	Installments    repository.InstallmentRepository
	Links           repository.MovementClassificationRepository
	Persons         repository.PersonRepository
	Classifications repository.ClassificationRepository
	Probe           *SchemaProbe
	Materializer    *Materializer
	Renderer        VoucherRenderer
}

// NewMovementUseCase crea el caso de uso.
func NewMovementUseCase(deps MovementDeps, log *logger.Logger) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementUseCase{
		tx:              deps.Tx,
		movements:       deps.Movements,
		installments:    deps.Installments,
		links:           deps.Links,
		persons:         deps.Persons,
		classifications: deps.Classifications,
		probe:           deps.Probe,
		materializer:    deps.Materializer,
		renderer:        deps.Renderer,
		now:             time.Now,
		log:             log.Component("ledger.movements"),
	}
}

// List devuelve movimientos activos, los más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movements.List(ctx, limit, offset)
}

// Get devuelve el movimiento con su detalle o domain.ErrNotFound.
func (uc *MovementUseCase) Get(ctx context.Context, id int64) (*MovementDetail, error) {
	mov, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil || !mov.Active {
		return nil, domain.ErrNotFound
	}
	d := &MovementDetail{Movement: mov}
	if d.Person, err = uc.persons.GetByID(ctx, mov.PersonID); err != nil {
		return nil, err
	}
	if d.Installments, err = uc.installments.ListByMovement(ctx, id); err != nil {
		return nil, err
	}
	if d.Links, err = uc.links.ListByMovement(ctx, id); err != nil {
		return nil, err
	}
	for _, l := range d.Links {
		c, err := uc.classifications.GetByID(ctx, l.ClassificationID)
		if err != nil {
			return nil, err
		}
		if c != nil {
			d.Classifications = append(d.Classifications, c)
		}
	}
	return d, nil
}

// Update modifica número de documento, fecha de emisión o observación.
func (uc *MovementUseCase) Update(ctx context.Context, id int64, in MovementUpdate) (*entity.Movement, error) {
	mov, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil || !mov.Active {
		return nil, domain.ErrNotFound
	}
	if in.DocumentNumber != nil {
		mov.DocumentNumber = strings.TrimSpace(*in.DocumentNumber)
	}
	if in.IssueDate != nil {
		t, ok := ParseDate(*in.IssueDate, uc.now())
		if !ok {
			return nil, fmt.Errorf("%w: data de emissão %q", domain.ErrInvalidInput, *in.IssueDate)
		}
		mov.IssueDate = t
	}
	if in.Note != nil {
		mov.Note = *in.Note
	}
	caps, err := uc.probe.Capabilities(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.movements.Update(ctx, mov, caps.DocumentColumn); err != nil {
		return nil, err
	}
	return mov, nil
}

// Delete desactiva el movimiento y todas sus parcelas en una transacción.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.RunLedger(ctx, func(
		movements repository.MovementRepository,
		installments repository.InstallmentRepository,
		_ repository.MovementClassificationRepository,
	) error {
		if err := movements.Deactivate(ctx, id); err != nil {
			return err
		}
		return installments.DeactivateByMovement(ctx, id)
	})
}

// SettleInstallment marca la parcela como paga. paidDate vacío = hoy; paidValue nil = valor de la parcela.
// Devuelve domain.ErrConflict si la parcela ya está paga o inactiva.
func (uc *MovementUseCase) SettleInstallment(ctx context.Context, id int64, paidDate string, paidValue *decimal.Decimal) (*entity.Installment, error) {
	inst, err := uc.installments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}
	if !inst.Active || inst.Status != entity.InstallmentOpen {
		return nil, fmt.Errorf("%w: parcela %d em situação %s", domain.ErrConflict, id, inst.Status)
	}

	now := uc.now()
	paidAt := now
	if strings.TrimSpace(paidDate) != "" {
		t, ok := ParseDate(paidDate, now)
		if !ok {
			return nil, fmt.Errorf("%w: data de pagamento %q", domain.ErrInvalidInput, paidDate)
		}
		paidAt = t
	}
	value := inst.Value
	if paidValue != nil {
		if paidValue.IsNegative() {
			return nil, fmt.Errorf("%w: valor pago negativo", domain.ErrInvalidInput)
		}
		value = *paidValue
	}
	if err := uc.installments.Settle(ctx, id, paidAt, value); err != nil {
		return nil, err
	}
	inst.Status = entity.InstallmentPaid
	inst.PaidAt = &paidAt
	inst.PaidValue = decimal.NewNullDecimal(value)
	uc.log.Info().Int64("installment_id", id).Str("value", value.StringFixed(2)).Msg("parcela liquidada")
	return inst, nil
}

// LinkClassification vincula una categoría existente a un movimiento activo.
func (uc *MovementUseCase) LinkClassification(ctx context.Context, movementID, classificationID int64) (bool, error) {
	mov, err := uc.movements.GetByID(ctx, movementID)
	if err != nil {
		return false, err
	}
	c, err := uc.classifications.GetByID(ctx, classificationID)
	if err != nil {
		return false, err
	}
	if mov == nil || !mov.Active || c == nil || !c.Active {
		return false, domain.ErrNotFound
	}
	return uc.materializer.LinkClassification(ctx, movementID, classificationID)
}

// Voucher genera el comprobante PDF del movimiento.
func (uc *MovementUseCase) Voucher(ctx context.Context, id int64) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("comprobante: renderizador no configurado")
	}
	d, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderVoucher(d)
}
