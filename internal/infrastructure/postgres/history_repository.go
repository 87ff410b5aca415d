package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo historial en historico_processamento; el registro completo va en la columna JSONB payload.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el repositorio del historial.
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

func (r *HistoryRepo) Save(ctx context.Context, rec *entity.ProcessingRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}
	const q = `INSERT INTO historico_processamento (id, arquivo, processado_em, sucesso, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET arquivo = EXCLUDED.arquivo, processado_em = EXCLUDED.processado_em,
			sucesso = EXCLUDED.sucesso, payload = EXCLUDED.payload`
	if _, err := r.q.Exec(ctx, q, rec.ID, rec.FileName, rec.ProcessedAt, rec.Success, payload); err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

func (r *HistoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProcessingRecord, error) {
	limit, offset = clampPage(limit, offset)
	const q = `SELECT payload FROM historico_processamento ORDER BY processado_em DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var out []*entity.ProcessingRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepo) Get(ctx context.Context, id string) (*entity.ProcessingRecord, error) {
	const q = `SELECT payload FROM historico_processamento WHERE id = $1`
	rec, err := scanRecord(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *HistoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM historico_processamento WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM historico_processamento`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func scanRecord(row pgxScanner) (*entity.ProcessingRecord, error) {
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan history record: %w", err)
	}
	var rec entity.ProcessingRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode history record: %w", err)
	}
	return &rec, nil
}
