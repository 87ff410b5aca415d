package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

// InstallmentRepo implementación de repository.InstallmentRepository sobre parcelacontas.
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository construye el repositorio de parcelas.
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

const installmentColumns = `idparcelacontas, idmovimentocontas, identificacao, numeroparcela, datavencimento,
	valorparcela, situacao, datapagamento, valorpago, ativo`

func scanInstallment(row pgxScanner) (*entity.Installment, error) {
	var i entity.Installment
	var status string
	if err := row.Scan(&i.ID, &i.MovementID, &i.Identifier, &i.Number, &i.DueDate,
		&i.Value, &status, &i.PaidAt, &i.PaidValue, &i.Active); err != nil {
		return nil, err
	}
	i.Status = entity.InstallmentStatus(status)
	return &i, nil
}

func (r *InstallmentRepo) Create(ctx context.Context, i *entity.Installment) error {
	const q = `INSERT INTO parcelacontas
		(idmovimentocontas, identificacao, numeroparcela, datavencimento, valorparcela, situacao, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING idparcelacontas`
	if err := r.q.QueryRow(ctx, q, i.MovementID, i.Identifier, i.Number, i.DueDate, i.Value, string(i.Status)).Scan(&i.ID); err != nil {
		return fmt.Errorf("insert installment: %w", err)
	}
	i.Active = true
	return nil
}

func (r *InstallmentRepo) GetByID(ctx context.Context, id int64) (*entity.Installment, error) {
	q := `SELECT ` + installmentColumns + ` FROM parcelacontas WHERE idparcelacontas = $1`
	i, err := scanInstallment(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installment: %w", err)
	}
	return i, nil
}

func (r *InstallmentRepo) ListByMovement(ctx context.Context, movementID int64) ([]*entity.Installment, error) {
	q := `SELECT ` + installmentColumns + ` FROM parcelacontas
		WHERE idmovimentocontas = $1 AND ativo
		ORDER BY numeroparcela`
	rows, err := r.q.Query(ctx, q, movementID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()
	var out []*entity.Installment
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *InstallmentRepo) DeactivateByMovement(ctx context.Context, movementID int64) error {
	const q = `UPDATE parcelacontas SET ativo = FALSE WHERE idmovimentocontas = $1`
	if _, err := r.q.Exec(ctx, q, movementID); err != nil {
		return fmt.Errorf("deactivate installments: %w", err)
	}
	return nil
}

// Settle solo cambia parcelas activas y ABERTA; si no afecta filas distingue inexistente (ErrNotFound) de ya pagada (ErrConflict).
func (r *InstallmentRepo) Settle(ctx context.Context, id int64, paidAt time.Time, paidValue decimal.Decimal) error {
	const q = `UPDATE parcelacontas SET situacao = $2, datapagamento = $3, valorpago = $4
		WHERE idparcelacontas = $1 AND ativo AND situacao = $5`
	tag, err := r.q.Exec(ctx, q, id, string(entity.InstallmentPaid), paidAt, paidValue, string(entity.InstallmentOpen))
	if err != nil {
		return fmt.Errorf("settle installment: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
