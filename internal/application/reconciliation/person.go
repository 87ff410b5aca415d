// Package reconciliation busca o crea los datos de referencia (personas y categorías)
// que una nota necesita antes de materializar el movimiento.
package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/taxid"
)

// PersonInput datos de la parte tal como salieron de la nota.
type PersonInput struct {
	Role      entity.PersonRole
	LegalName string
	TradeName string
	TaxID     string
	// Placeholder el nombre es un sustituto genérico ("FORNECEDOR NÃO IDENTIFICADO"): con documento se
	// concilia solo por documento y sin documento solo contra filas que tampoco lo tienen.
	Placeholder bool
}

// PersonMatch resultado de la búsqueda. Person es nil si no hubo coincidencia utilizable.
type PersonMatch struct {
	Person  *entity.Person
	ByTaxID bool
	// Candidates cantidad de activos con el mismo nombre cuando la búsqueda por nombre fue ambigua.
	Candidates int
}

// Found indica si hay una persona reutilizable.
func (m *PersonMatch) Found() bool { return m != nil && m.Person != nil }

// Ambiguous indica que el nombre coincidió con más de una persona y ninguna se reutilizó.
func (m *PersonMatch) Ambiguous() bool { return m != nil && m.Person == nil && m.Candidates > 1 }

// PersonResult resultado de la conciliación.
type PersonResult struct {
	ID           int64
	Role         entity.PersonRole
	LegalName    string
	TaxID        string
	WasCreated   bool
	RoleChanged  bool
	PreviousRole entity.PersonRole
	// TaxIDAttached la fila reutilizada no tenía documento y se le asignó el de la nota.
	TaxIDAttached bool
	// AmbiguousCandidates > 1 si se creó una persona nueva por ambigüedad de nombre.
	AmbiguousCandidates int
}

// PersonReconciler busca o crea personas manteniendo un único registro activo por documento.
type PersonReconciler struct {
	repo repository.PersonRepository
	log  *logger.Logger
}

// NewPersonReconciler crea el conciliador.
func NewPersonReconciler(repo repository.PersonRepository, log *logger.Logger) *PersonReconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &PersonReconciler{repo: repo, log: log.Component("reconciliation.person")}
}

// CanonicalTaxID normaliza el documento a su máscara oficial. "N/A" y vacío devuelven "".
func CanonicalTaxID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "N/A") {
		return ""
	}
	if taxid.Detect(s) != taxid.KindUnknown {
		return taxid.Format(s)
	}
	return s
}

// Find busca primero por documento exacto; si no hay, por nombre (sin distinguir mayúsculas),
// aceptando solo una coincidencia única y descartando homónimos con un documento distinto.
func (r *PersonReconciler) Find(ctx context.Context, legalName, taxID string) (*PersonMatch, error) {
	return r.find(ctx, legalName, CanonicalTaxID(taxID), false)
}

func (r *PersonReconciler) find(ctx context.Context, legalName, taxID string, placeholder bool) (*PersonMatch, error) {
	if taxID != "" {
		p, err := r.repo.FindActiveByTaxID(ctx, taxID)
		if err != nil {
			return nil, fmt.Errorf("buscar persona por documento: %w", err)
		}
		if p != nil {
			return &PersonMatch{Person: p, ByTaxID: true}, nil
		}
		if placeholder {
			return &PersonMatch{}, nil
		}
	}

	name := strings.TrimSpace(legalName)
	if name == "" {
		return &PersonMatch{}, nil
	}
	found, err := r.repo.FindActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("buscar persona por nombre: %w", err)
	}
	// Un homónimo con otro documento no es la misma persona.
	byName := found[:0]
	for _, p := range found {
		if placeholder && p.TaxID != "" {
			continue
		}
		if taxID == "" || p.TaxID == "" {
			byName = append(byName, p)
		}
	}
	switch len(byName) {
	case 0:
		return &PersonMatch{}, nil
	case 1:
		return &PersonMatch{Person: byName[0], Candidates: 1}, nil
	default:
		r.log.Warn().Str("name", name).Int("candidates", len(byName)).Msg("nombre ambiguo, no se reutiliza")
		return &PersonMatch{Candidates: len(byName)}, nil
	}
}

// Reconcile devuelve la persona existente (cambiando su rol si difiere) o crea una nueva.
// Si la creación pierde una carrera por el documento, relee y reutiliza la fila ganadora.
func (r *PersonReconciler) Reconcile(ctx context.Context, in PersonInput) (*PersonResult, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	in.LegalName = strings.TrimSpace(in.LegalName)
	in.TaxID = CanonicalTaxID(in.TaxID)
	if in.LegalName == "" && in.TaxID == "" {
		return nil, fmt.Errorf("%w: persona sin nombre ni documento", domain.ErrInvalidInput)
	}

	match, err := r.find(ctx, in.LegalName, in.TaxID, in.Placeholder)
	if err != nil {
		return nil, err
	}
	if match.Found() {
		if !match.ByTaxID && match.Person.TaxID == "" && in.TaxID != "" {
			return r.attachTaxID(ctx, match.Person, in)
		}
		return r.reuse(ctx, match.Person, in.Role)
	}

	p := &entity.Person{
		Role:      in.Role,
		LegalName: in.LegalName,
		TradeName: strings.TrimSpace(in.TradeName),
		TaxID:     in.TaxID,
		Active:    true,
	}
	if err := r.repo.Create(ctx, p); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) || in.TaxID == "" {
			return nil, fmt.Errorf("crear persona: %w", err)
		}
		// Otra ejecución insertó el mismo documento entre la búsqueda y el insert.
		winner, ferr := r.repo.FindActiveByTaxID(ctx, in.TaxID)
		if ferr != nil {
			return nil, fmt.Errorf("releer persona por documento: %w", ferr)
		}
		if winner == nil {
			return nil, &domain.ReconciliationConflictError{Key: in.TaxID, Err: err}
		}
		r.log.Info().Str("tax_id", in.TaxID).Int64("id", winner.ID).Msg("carrera por documento resuelta releyendo")
		return r.reuse(ctx, winner, in.Role)
	}

	r.log.Debug().Int64("id", p.ID).Str("role", string(p.Role)).Msg("persona creada")
	return &PersonResult{
		ID:                  p.ID,
		Role:                p.Role,
		LegalName:           p.LegalName,
		TaxID:               p.TaxID,
		WasCreated:          true,
		AmbiguousCandidates: match.Candidates,
	}, nil
}

// attachTaxID guarda el documento de la nota en una persona encontrada por nombre que no lo tenía,
// para que las siguientes búsquedas acierten por documento.
func (r *PersonReconciler) attachTaxID(ctx context.Context, p *entity.Person, in PersonInput) (*PersonResult, error) {
	updated := *p
	updated.TaxID = in.TaxID
	if err := r.repo.Update(ctx, &updated); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("asignar documento a la persona %d: %w", p.ID, err)
		}
		// El documento llegó a otra fila entre la búsqueda y la actualización.
		winner, ferr := r.repo.FindActiveByTaxID(ctx, in.TaxID)
		if ferr != nil {
			return nil, fmt.Errorf("releer persona por documento: %w", ferr)
		}
		if winner == nil {
			return nil, &domain.ReconciliationConflictError{Key: in.TaxID, Err: err}
		}
		return r.reuse(ctx, winner, in.Role)
	}
	r.log.Info().Int64("id", p.ID).Str("tax_id", in.TaxID).Msg("documento asignado a persona existente")
	res, err := r.reuse(ctx, &updated, in.Role)
	if err != nil {
		return nil, err
	}
	res.TaxIDAttached = true
	return res, nil
}

func (r *PersonReconciler) reuse(ctx context.Context, p *entity.Person, role entity.PersonRole) (*PersonResult, error) {
	res := &PersonResult{ID: p.ID, Role: p.Role, LegalName: p.LegalName, TaxID: p.TaxID}
	if p.Role == role {
		return res, nil
	}
	if err := r.repo.UpdateRole(ctx, p.ID, role); err != nil {
		return nil, fmt.Errorf("actualizar rol de la persona %d: %w", p.ID, err)
	}
	r.log.Info().Int64("id", p.ID).Str("from", string(p.Role)).Str("to", string(role)).Msg("rol de la persona actualizado")
	res.PreviousRole = p.Role
	res.Role = role
	res.RoleChanged = true
	return res, nil
}
