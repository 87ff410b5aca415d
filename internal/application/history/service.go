// Package history expone el historial de procesamientos de notas.
package history

import (
	"context"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

// Service casos de uso del historial.
type Service struct {
	repo repository.HistoryRepository
}

// NewService crea el servicio sobre el repositorio dado (Postgres o Redis).
func NewService(repo repository.HistoryRepository) *Service {
	return &Service{repo: repo}
}

// Record guarda un resultado.
func (s *Service) Record(ctx context.Context, rec *entity.ProcessingRecord) error {
	if rec == nil || strings.TrimSpace(rec.ID) == "" {
		return domain.ErrInvalidInput
	}
	return s.repo.Save(ctx, rec)
}

// List devuelve los registros más recientes primero.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*entity.ProcessingRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// Get devuelve el registro o domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*entity.ProcessingRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// Delete elimina un registro; domain.ErrNotFound si no existe.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Clear elimina todo el historial.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
