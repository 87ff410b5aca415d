package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo implementación de repository.ClassificationRepository sobre la tabla classificacao.
type ClassificationRepo struct {
	q Querier
}

// NewClassificationRepository construye el repositorio de categorías.
func NewClassificationRepository(q Querier) *ClassificationRepo {
	return &ClassificationRepo{q: q}
}

const classificationColumns = `idclassificacao, tipo, descricao, ativo`

func scanClassification(row pgxScanner) (*entity.Classification, error) {
	var c entity.Classification
	var kind string
	if err := row.Scan(&c.ID, &kind, &c.Label, &c.Active); err != nil {
		return nil, err
	}
	c.Kind = entity.ClassificationKind(kind)
	return &c, nil
}

func (r *ClassificationRepo) FindActive(ctx context.Context, kind entity.ClassificationKind, label string) (*entity.Classification, error) {
	q := `SELECT ` + classificationColumns + ` FROM classificacao
		WHERE ativo AND tipo = $1 AND UPPER(TRIM(descricao)) = UPPER(TRIM($2))
		ORDER BY idclassificacao LIMIT 1`
	c, err := scanClassification(r.q.QueryRow(ctx, q, string(kind), label))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find classification: %w", err)
	}
	return c, nil
}

// Create con withDisplayName copia la etiqueta a la columna "nome", que solo existe en revisiones recientes.
func (r *ClassificationRepo) Create(ctx context.Context, c *entity.Classification, withDisplayName bool) error {
	q := `INSERT INTO classificacao (tipo, descricao, ativo) VALUES ($1, $2, TRUE) RETURNING idclassificacao`
	if withDisplayName {
		q = `INSERT INTO classificacao (tipo, descricao, nome, ativo) VALUES ($1, $2, $2, TRUE) RETURNING idclassificacao`
	}
	if err := r.q.QueryRow(ctx, q, string(c.Kind), c.Label).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert classification: %w", err)
	}
	c.Active = true
	return nil
}

func (r *ClassificationRepo) Update(ctx context.Context, c *entity.Classification) error {
	const q = `UPDATE classificacao SET tipo = $2, descricao = $3 WHERE idclassificacao = $1`
	tag, err := r.q.Exec(ctx, q, c.ID, string(c.Kind), c.Label)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update classification: %w", err)
	}
	return expectOne(tag)
}

func (r *ClassificationRepo) GetByID(ctx context.Context, id int64) (*entity.Classification, error) {
	q := `SELECT ` + classificationColumns + ` FROM classificacao WHERE idclassificacao = $1`
	c, err := scanClassification(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get classification: %w", err)
	}
	return c, nil
}

func (r *ClassificationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Classification, error) {
	limit, offset = clampPage(limit, offset)
	q := `SELECT ` + classificationColumns + ` FROM classificacao ORDER BY tipo, descricao, idclassificacao LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()
	var out []*entity.Classification
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClassificationRepo) SetActive(ctx context.Context, id int64, active bool) error {
	const q = `UPDATE classificacao SET ativo = $2 WHERE idclassificacao = $1`
	tag, err := r.q.Exec(ctx, q, id, active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set classification active: %w", err)
	}
	return expectOne(tag)
}
