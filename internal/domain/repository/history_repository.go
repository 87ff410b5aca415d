package repository

import (
	"context"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// HistoryRepository almacén lateral de resultados de procesamiento.
type HistoryRepository interface {
	Save(ctx context.Context, rec *entity.ProcessingRecord) error
	// List devuelve los registros más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.ProcessingRecord, error)
	// Get devuelve (nil, nil) si no existe.
	Get(ctx context.Context, id string) (*entity.ProcessingRecord, error)
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
