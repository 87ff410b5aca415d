package memory

import (
	"context"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.ClassificationRepository = (*ClassificationRepository)(nil)

// ClassificationRepository implementación en memoria.
type ClassificationRepository struct {
	s *Store
	// DisplayNames IDs creados con la columna "nome" poblada.
	DisplayNames map[int64]string
}

// NewClassificationRepository crea el repositorio sobre el almacén.
func NewClassificationRepository(s *Store) *ClassificationRepository {
	return &ClassificationRepository{s: s, DisplayNames: map[int64]string{}}
}

func (r *ClassificationRepository) duplicate(id int64, kind entity.ClassificationKind, label string) bool {
	for oid, c := range r.s.classifications {
		if oid != id && c.Active && c.Kind == kind && upperTrim(c.Label) == upperTrim(label) {
			return true
		}
	}
	return false
}

func (r *ClassificationRepository) FindActive(_ context.Context, kind entity.ClassificationKind, label string) (*entity.Classification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.classifications) {
		c := r.s.classifications[id]
		if c.Active && c.Kind == kind && upperTrim(c.Label) == upperTrim(label) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ClassificationRepository) Create(_ context.Context, c *entity.Classification, withDisplayName bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.duplicate(0, c.Kind, c.Label) {
		return domain.ErrDuplicate
	}
	r.s.seqClassification++
	c.Active = true
	c.ID = r.s.seqClassification
	cp := *c
	r.s.classifications[c.ID] = &cp
	if withDisplayName {
		r.DisplayNames[c.ID] = c.Label
	}
	return nil
}

func (r *ClassificationRepository) Update(_ context.Context, c *entity.Classification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.classifications[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if c.Active && r.duplicate(c.ID, c.Kind, c.Label) {
		return domain.ErrDuplicate
	}
	cp := *c
	r.s.classifications[c.ID] = &cp
	return nil
}

func (r *ClassificationRepository) GetByID(_ context.Context, id int64) (*entity.Classification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.classifications[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *ClassificationRepository) List(_ context.Context, limit, offset int) ([]*entity.Classification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Classification, 0, len(r.s.classifications))
	for _, id := range sortedIDs(r.s.classifications) {
		cp := *r.s.classifications[id]
		out = append(out, &cp)
	}
	return page(out, limit, offset), nil
}

func (r *ClassificationRepository) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.classifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	if active && r.duplicate(id, c.Kind, c.Label) {
		return domain.ErrDuplicate
	}
	c.Active = active
	return nil
}
