package repository

import (
	"context"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// ClassificationRepository define el puerto de persistencia para Classification.
type ClassificationRepository interface {
	// FindActive compara el tipo exacto y UPPER(TRIM(label)); (nil, nil) si no hay coincidencia.
	FindActive(ctx context.Context, kind entity.ClassificationKind, label string) (*entity.Classification, error)
	// Create asigna ID. withDisplayName llena también la columna opcional "nome".
	Create(ctx context.Context, c *entity.Classification, withDisplayName bool) error
	Update(ctx context.Context, c *entity.Classification) error
	GetByID(ctx context.Context, id int64) (*entity.Classification, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Classification, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
