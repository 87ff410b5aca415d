package memory

import (
	"context"
	"sort"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepository)(nil)

// PersonRepository implementación en memoria.
type PersonRepository struct {
	s *Store
	// BeforeCreate se invoca antes de insertar; permite simular una inserción concurrente.
	BeforeCreate func(p *entity.Person)
}

// NewPersonRepository crea el repositorio sobre el almacén.
func NewPersonRepository(s *Store) *PersonRepository { return &PersonRepository{s: s} }

func (r *PersonRepository) FindActiveByTaxID(_ context.Context, taxID string) (*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range sortedIDs(r.s.persons) {
		p := r.s.persons[id]
		if p.Active && p.TaxID != "" && p.TaxID == taxID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *PersonRepository) FindActiveByName(_ context.Context, legalName string) ([]*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Person
	for _, id := range sortedIDs(r.s.persons) {
		p := r.s.persons[id]
		if p.Active && upperTrim(p.LegalName) == upperTrim(legalName) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PersonRepository) Create(_ context.Context, p *entity.Person) error {
	if r.BeforeCreate != nil {
		hook := r.BeforeCreate
		r.BeforeCreate = nil
		hook(p)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.TaxID != "" {
		for _, other := range r.s.persons {
			if other.Active && other.TaxID == p.TaxID {
				return domain.ErrDuplicate
			}
		}
	}
	r.s.seqPerson++
	p.ID = r.s.seqPerson
	p.Active = true
	p.CreatedAt = r.s.now()
	cp := *p
	r.s.persons[p.ID] = &cp
	return nil
}

func (r *PersonRepository) UpdateRole(_ context.Context, id int64, role entity.PersonRole) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.persons[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Role = role
	return nil
}

func (r *PersonRepository) Update(_ context.Context, p *entity.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.persons[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.TaxID != "" {
		for id, other := range r.s.persons {
			if id != p.ID && other.Active && other.TaxID == p.TaxID {
				return domain.ErrDuplicate
			}
		}
	}
	cp := *p
	cp.CreatedAt = cur.CreatedAt
	r.s.persons[p.ID] = &cp
	return nil
}

func (r *PersonRepository) GetByID(_ context.Context, id int64) (*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.persons[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PersonRepository) List(_ context.Context, limit, offset int) ([]*entity.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Person, 0, len(r.s.persons))
	for _, p := range r.s.persons {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LegalName == out[j].LegalName {
			return out[i].ID < out[j].ID
		}
		return out[i].LegalName < out[j].LegalName
	})
	return page(out, limit, offset), nil
}

func (r *PersonRepository) SetActive(_ context.Context, id int64, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.persons[id]
	if !ok {
		return domain.ErrNotFound
	}
	if active && p.TaxID != "" {
		for oid, other := range r.s.persons {
			if oid != id && other.Active && other.TaxID == p.TaxID {
				return domain.ErrDuplicate
			}
		}
	}
	p.Active = active
	return nil
}
