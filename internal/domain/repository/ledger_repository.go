package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para Movement.
// documentColumn es la variante de columna del número de documento detectada en el esquema;
// vacío significa que el esquema no tiene ninguna y el número se omite.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement, documentColumn string) error
	Update(ctx context.Context, m *entity.Movement, documentColumn string) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Movement, error)
	Deactivate(ctx context.Context, id int64) error
}

// InstallmentRepository define el puerto de persistencia para Installment.
type InstallmentRepository interface {
	Create(ctx context.Context, i *entity.Installment) error
	GetByID(ctx context.Context, id int64) (*entity.Installment, error)
	ListByMovement(ctx context.Context, movementID int64) ([]*entity.Installment, error)
	DeactivateByMovement(ctx context.Context, movementID int64) error
	Settle(ctx context.Context, id int64, paidAt time.Time, paidValue decimal.Decimal) error
}

// MovementClassificationRepository define el puerto de persistencia de los vínculos movimiento-categoría.
type MovementClassificationRepository interface {
	Exists(ctx context.Context, movementID, classificationID int64) (bool, error)
	// Create inserta el vínculo; withValue llena la columna opcional "valor".
	Create(ctx context.Context, link *entity.MovementClassification, withValue bool) error
	ListByMovement(ctx context.Context, movementID int64) ([]*entity.MovementClassification, error)
}
