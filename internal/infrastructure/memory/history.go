package memory

import (
	"context"
	"sort"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository historial en memoria.
type HistoryRepository struct{ s *Store }

// NewHistoryRepository crea el repositorio sobre el almacén.
func NewHistoryRepository(s *Store) *HistoryRepository { return &HistoryRepository{s: s} }

func (r *HistoryRepository) Save(_ context.Context, rec *entity.ProcessingRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *rec
	r.s.history[rec.ID] = &cp
	return nil
}

func (r *HistoryRepository) List(_ context.Context, limit, offset int) ([]*entity.ProcessingRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.ProcessingRecord, 0, len(r.s.history))
	for _, rec := range r.s.history {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProcessedAt.After(out[j].ProcessedAt) })
	return page(out, limit, offset), nil
}

func (r *HistoryRepository) Get(_ context.Context, id string) (*entity.ProcessingRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.history[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *HistoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.history[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.history, id)
	return nil
}

func (r *HistoryRepository) Clear(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.history = map[string]*entity.ProcessingRecord{}
	return nil
}
