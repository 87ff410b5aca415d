// Package memory implementa los puertos de persistencia en memoria.
// Reproduce las restricciones del esquema relevantes para la conciliación (documento único
// entre personas activas, (tipo, etiqueta) única entre categorías activas, par único en vínculos)
// y un TxRunner que deshace los cambios del libro si la función falla.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

type linkKey struct{ movementID, classificationID int64 }

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	persons         map[int64]*entity.Person
	classifications map[int64]*entity.Classification
	movements       map[int64]*entity.Movement
	installments    map[int64]*entity.Installment
	links           map[linkKey]*entity.MovementClassification
	history         map[string]*entity.ProcessingRecord

	seqPerson, seqClassification, seqMovement, seqInstallment int64

	// Columns columnas existentes por tabla para el inspector ("tabla.columna").
	Columns map[string]bool
	// FailOn hace fallar la operación indicada ("movement.create", "installment.create", "link.create").
	FailOn map[string]error

	now func() time.Time
}

// NewStore crea un almacén vacío con todas las columnas opcionales presentes.
func NewStore() *Store {
	return &Store{
		persons:         map[int64]*entity.Person{},
		classifications: map[int64]*entity.Classification{},
		movements:       map[int64]*entity.Movement{},
		installments:    map[int64]*entity.Installment{},
		links:           map[linkKey]*entity.MovementClassification{},
		history:         map[string]*entity.ProcessingRecord{},
		Columns: map[string]bool{
			"movimentocontas.numerodocumento": true,
			"movimento_classificacao.valor":   true,
			"classificacao.nome":              true,
		},
		FailOn: map[string]error{},
		now:    time.Now,
	}
}

// Counts cantidad de filas por tabla (activas e inactivas).
type Counts struct {
	Persons, Classifications, Movements, Installments, Links, History int
}

// Counts devuelve la cantidad de filas por tabla.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Counts{
		Persons:         len(s.persons),
		Classifications: len(s.classifications),
		Movements:       len(s.movements),
		Installments:    len(s.installments),
		Links:           len(s.links),
		History:         len(s.history),
	}
}

func (s *Store) failure(op string) error {
	if s.FailOn == nil {
		return nil
	}
	return s.FailOn[op]
}

func upperTrim(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
