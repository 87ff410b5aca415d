package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de repository.MovementRepository sobre movimentocontas.
// La columna del número de documento varía según la revisión del esquema; se lee vía to_jsonb
// para que la misma consulta funcione con cualquiera de las dos variantes (o ninguna).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el repositorio de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `m.idmovimentocontas, m.tipo, m.idpessoas,
	COALESCE(to_jsonb(m)->>'numerodocumento', to_jsonb(m)->>'numeronotafiscal', ''),
	m.dataemissao, m.valortotal, COALESCE(m.observacao, ''), m.ativo, m.datacadastro`

func scanMovement(row pgxScanner) (*entity.Movement, error) {
	var m entity.Movement
	var dir string
	if err := row.Scan(&m.ID, &dir, &m.PersonID, &m.DocumentNumber, &m.IssueDate, &m.TotalValue, &m.Note, &m.Active, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Direction = entity.Direction(dir)
	return &m, nil
}

// documentColumn solo acepta las variantes conocidas: el nombre se concatena en el SQL.
func documentColumn(col string) (string, error) {
	switch col {
	case "", repository.DocumentColumnDocumento, repository.DocumentColumnNotaFiscal:
		return col, nil
	}
	return "", fmt.Errorf("columna de documento desconocida %q", col)
}

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement, docColumn string) error {
	col, err := documentColumn(docColumn)
	if err != nil {
		return err
	}
	q := `INSERT INTO movimentocontas (tipo, idpessoas, dataemissao, valortotal, observacao, ativo, datacadastro)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING idmovimentocontas, datacadastro`
	args := []any{string(m.Direction), m.PersonID, m.IssueDate, m.TotalValue, m.Note}
	if col != "" {
		q = `INSERT INTO movimentocontas (tipo, idpessoas, dataemissao, valortotal, observacao, ativo, datacadastro, ` + col + `)
			VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), $6)
			RETURNING idmovimentocontas, datacadastro`
		args = append(args, m.DocumentNumber)
	}
	if err := r.q.QueryRow(ctx, q, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	m.Active = true
	return nil
}

func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement, docColumn string) error {
	col, err := documentColumn(docColumn)
	if err != nil {
		return err
	}
	q := `UPDATE movimentocontas SET dataemissao = $2, observacao = $3 WHERE idmovimentocontas = $1 AND ativo`
	args := []any{m.ID, m.IssueDate, m.Note}
	if col != "" {
		q = `UPDATE movimentocontas SET dataemissao = $2, observacao = $3, ` + col + ` = $4
			WHERE idmovimentocontas = $1 AND ativo`
		args = append(args, m.DocumentNumber)
	}
	tag, err := r.q.Exec(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return expectOne(tag)
}

func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	q := `SELECT ` + movementColumns + ` FROM movimentocontas m WHERE m.idmovimentocontas = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

func (r *MovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.Movement, error) {
	limit, offset = clampPage(limit, offset)
	q := `SELECT ` + movementColumns + ` FROM movimentocontas m
		WHERE m.ativo
		ORDER BY m.idmovimentocontas DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MovementRepo) Deactivate(ctx context.Context, id int64) error {
	const q = `UPDATE movimentocontas SET ativo = FALSE WHERE idmovimentocontas = $1 AND ativo`
	tag, err := r.q.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("deactivate movement: %w", err)
	}
	return expectOne(tag)
}
