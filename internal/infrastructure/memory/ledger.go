package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var (
	_ repository.MovementRepository               = (*MovementRepository)(nil)
	_ repository.InstallmentRepository            = (*InstallmentRepository)(nil)
	_ repository.MovementClassificationRepository = (*LinkRepository)(nil)
)

// MovementRepository implementación en memoria. DocumentColumns guarda la columna usada por ID.
type MovementRepository struct {
	s               *Store
	DocumentColumns map[int64]string
}

// NewMovementRepository crea el repositorio sobre el almacén.
func NewMovementRepository(s *Store) *MovementRepository {
	return &MovementRepository{s: s, DocumentColumns: map[int64]string{}}
}

func (r *MovementRepository) Create(_ context.Context, m *entity.Movement, documentColumn string) error {
	if err := r.s.failure("movement.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seqMovement++
	m.ID = r.s.seqMovement
	m.CreatedAt = r.s.now()
	cp := *m
	if documentColumn == "" {
		cp.DocumentNumber = ""
	}
	r.s.movements[m.ID] = &cp
	r.DocumentColumns[m.ID] = documentColumn
	return nil
}

func (r *MovementRepository) Update(_ context.Context, m *entity.Movement, documentColumn string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.movements[m.ID]
	if !ok || !cur.Active {
		return domain.ErrNotFound
	}
	cur.IssueDate = m.IssueDate
	cur.Note = m.Note
	if documentColumn != "" {
		cur.DocumentNumber = m.DocumentNumber
	}
	return nil
}

func (r *MovementRepository) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MovementRepository) List(_ context.Context, limit, offset int) ([]*entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := sortedIDs(r.s.movements)
	out := make([]*entity.Movement, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if m := r.s.movements[ids[i]]; m.Active {
			cp := *m
			out = append(out, &cp)
		}
	}
	return page(out, limit, offset), nil
}

func (r *MovementRepository) Deactivate(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.movements[id]
	if !ok || !m.Active {
		return domain.ErrNotFound
	}
	m.Active = false
	return nil
}

// InstallmentRepository implementación en memoria.
type InstallmentRepository struct{ s *Store }

// NewInstallmentRepository crea el repositorio sobre el almacén.
func NewInstallmentRepository(s *Store) *InstallmentRepository { return &InstallmentRepository{s: s} }

func (r *InstallmentRepository) Create(_ context.Context, i *entity.Installment) error {
	if err := r.s.failure("installment.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seqInstallment++
	i.ID = r.s.seqInstallment
	cp := *i
	r.s.installments[i.ID] = &cp
	return nil
}

func (r *InstallmentRepository) GetByID(_ context.Context, id int64) (*entity.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.installments[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *InstallmentRepository) ListByMovement(_ context.Context, movementID int64) ([]*entity.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Installment
	for _, i := range r.s.installments {
		if i.MovementID == movementID && i.Active {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Number < out[b].Number })
	return out, nil
}

func (r *InstallmentRepository) DeactivateByMovement(_ context.Context, movementID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.installments {
		if i.MovementID == movementID {
			i.Active = false
		}
	}
	return nil
}

func (r *InstallmentRepository) Settle(_ context.Context, id int64, paidAt time.Time, paidValue decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i, ok := r.s.installments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !i.Active || i.Status != entity.InstallmentOpen {
		return domain.ErrConflict
	}
	i.Status = entity.InstallmentPaid
	i.PaidAt = &paidAt
	i.PaidValue = decimal.NewNullDecimal(paidValue)
	return nil
}

// LinkRepository implementación en memoria de los vínculos movimiento-categoría.
type LinkRepository struct{ s *Store }

// NewLinkRepository crea el repositorio sobre el almacén.
func NewLinkRepository(s *Store) *LinkRepository { return &LinkRepository{s: s} }

func (r *LinkRepository) Exists(_ context.Context, movementID, classificationID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.links[linkKey{movementID, classificationID}]
	return ok, nil
}

func (r *LinkRepository) Create(_ context.Context, link *entity.MovementClassification, withValue bool) error {
	if err := r.s.failure("link.create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := linkKey{link.MovementID, link.ClassificationID}
	if _, ok := r.s.links[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *link
	if !withValue {
		cp.Value = decimal.NullDecimal{}
	}
	r.s.links[k] = &cp
	return nil
}

func (r *LinkRepository) ListByMovement(_ context.Context, movementID int64) ([]*entity.MovementClassification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.MovementClassification
	for k, l := range r.s.links {
		if k.movementID == movementID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ClassificationID < out[b].ClassificationID })
	return out, nil
}
