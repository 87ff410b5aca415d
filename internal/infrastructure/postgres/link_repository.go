package postgres

import (
	"context"
	"fmt"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.MovementClassificationRepository = (*MovementClassificationRepo)(nil)

// MovementClassificationRepo vínculos en movimento_classificacao. La columna "valor" es opcional.
type MovementClassificationRepo struct {
	q Querier
}

// NewMovementClassificationRepository construye el repositorio de vínculos.
func NewMovementClassificationRepository(q Querier) *MovementClassificationRepo {
	return &MovementClassificationRepo{q: q}
}

func (r *MovementClassificationRepo) Exists(ctx context.Context, movementID, classificationID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM movimento_classificacao WHERE idmovimentocontas = $1 AND idclassificacao = $2)`
	var ok bool
	if err := r.q.QueryRow(ctx, q, movementID, classificationID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	return ok, nil
}

func (r *MovementClassificationRepo) Create(ctx context.Context, link *entity.MovementClassification, withValue bool) error {
	q := `INSERT INTO movimento_classificacao (idmovimentocontas, idclassificacao) VALUES ($1, $2)`
	args := []any{link.MovementID, link.ClassificationID}
	if withValue {
		q = `INSERT INTO movimento_classificacao (idmovimentocontas, idclassificacao, valor) VALUES ($1, $2, $3)`
		args = append(args, link.Value)
	}
	if _, err := r.q.Exec(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (r *MovementClassificationRepo) ListByMovement(ctx context.Context, movementID int64) ([]*entity.MovementClassification, error) {
	const q = `SELECT mc.idmovimentocontas, mc.idclassificacao, (to_jsonb(mc)->>'valor')::numeric
		FROM movimento_classificacao mc
		WHERE mc.idmovimentocontas = $1
		ORDER BY mc.idclassificacao`
	rows, err := r.q.Query(ctx, q, movementID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()
	var out []*entity.MovementClassification
	for rows.Next() {
		var l entity.MovementClassification
		if err := rows.Scan(&l.MovementID, &l.ClassificationID, &l.Value); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
