package memory

import (
	"context"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

// TxRunner simula una transacción: guarda una copia de las tablas del libro y la restaura si fn falla.
type TxRunner struct {
	s            *Store
	movements    *MovementRepository
	installments *InstallmentRepository
	links        *LinkRepository
}

// NewTxRunner crea el runner con los repositorios del libro del almacén.
func NewTxRunner(s *Store, movements *MovementRepository, installments *InstallmentRepository, links *LinkRepository) *TxRunner {
	return &TxRunner{s: s, movements: movements, installments: installments, links: links}
}

type ledgerSnapshot struct {
	movements    map[int64]entity.Movement
	installments map[int64]entity.Installment
	links        map[linkKey]entity.MovementClassification
}

func (r *TxRunner) snapshot() ledgerSnapshot {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := ledgerSnapshot{
		movements:    make(map[int64]entity.Movement, len(r.s.movements)),
		installments: make(map[int64]entity.Installment, len(r.s.installments)),
		links:        make(map[linkKey]entity.MovementClassification, len(r.s.links)),
	}
	for id, m := range r.s.movements {
		snap.movements[id] = *m
	}
	for id, i := range r.s.installments {
		snap.installments[id] = *i
	}
	for k, l := range r.s.links {
		snap.links[k] = *l
	}
	return snap
}

func (r *TxRunner) restore(snap ledgerSnapshot) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movements = make(map[int64]*entity.Movement, len(snap.movements))
	for id, m := range snap.movements {
		m := m
		r.s.movements[id] = &m
	}
	r.s.installments = make(map[int64]*entity.Installment, len(snap.installments))
	for id, i := range snap.installments {
		i := i
		r.s.installments[id] = &i
	}
	r.s.links = make(map[linkKey]*entity.MovementClassification, len(snap.links))
	for k, l := range snap.links {
		l := l
		r.s.links[k] = &l
	}
}

// RunLedger ejecuta fn y deshace los cambios del libro si devuelve error.
func (r *TxRunner) RunLedger(_ context.Context, fn func(
	movements repository.MovementRepository,
	installments repository.InstallmentRepository,
	links repository.MovementClassificationRepository,
) error) error {
	snap := r.snapshot()
	if err := fn(r.movements, r.installments, r.links); err != nil {
		r.restore(snap)
		return err
	}
	return nil
}

// SchemaInspector responde según Store.Columns.
type SchemaInspector struct {
	s     *Store
	Calls int
}

// NewSchemaInspector crea el inspector sobre el almacén.
func NewSchemaInspector(s *Store) *SchemaInspector { return &SchemaInspector{s: s} }

func (i *SchemaInspector) ColumnExists(_ context.Context, table, column string) (bool, error) {
	i.s.mu.Lock()
	defer i.s.mu.Unlock()
	i.Calls++
	return i.s.Columns[strings.ToLower(table+"."+column)], nil
}
