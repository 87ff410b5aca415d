package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// CapabilitiesProvider expone las columnas opcionales detectadas en el esquema.
type CapabilitiesProvider interface {
	Capabilities(ctx context.Context) (repository.SchemaCapabilities, error)
}

// ClassificationResult resultado de la conciliación de una categoría.
type ClassificationResult struct {
	ID         int64
	Kind       entity.ClassificationKind
	Label      string
	WasCreated bool
}

// ClassificationReconciler busca o crea categorías por (tipo, etiqueta en mayúsculas).
type ClassificationReconciler struct {
	repo repository.ClassificationRepository
	caps CapabilitiesProvider
	log  *logger.Logger
}

// NewClassificationReconciler crea el conciliador. caps puede ser nil (sin columna "nome").
func NewClassificationReconciler(repo repository.ClassificationRepository, caps CapabilitiesProvider, log *logger.Logger) *ClassificationReconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &ClassificationReconciler{repo: repo, caps: caps, log: log.Component("reconciliation.classification")}
}

// CanonicalLabel recorta y pasa a mayúsculas; vacío se convierte en UNCLASSIFIED.
func CanonicalLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return entity.UnclassifiedLabel
	}
	return cases.Upper(language.Und).String(label)
}

// Find busca una categoría activa con el mismo tipo y etiqueta, sin distinguir mayúsculas.
func (r *ClassificationReconciler) Find(ctx context.Context, kind entity.ClassificationKind, label string) (*entity.Classification, error) {
	c, err := r.repo.FindActive(ctx, kind, CanonicalLabel(label))
	if err != nil {
		return nil, fmt.Errorf("buscar categoría: %w", err)
	}
	return c, nil
}

// Reconcile devuelve la categoría existente o la crea.
func (r *ClassificationReconciler) Reconcile(ctx context.Context, kind entity.ClassificationKind, label string) (*ClassificationResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo de categoría %q", domain.ErrInvalidInput, kind)
	}
	label = CanonicalLabel(label)

	existing, err := r.Find(ctx, kind, label)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ClassificationResult{ID: existing.ID, Kind: existing.Kind, Label: existing.Label}, nil
	}

	c := &entity.Classification{Kind: kind, Label: label, Active: true}
	if err := r.repo.Create(ctx, c, r.hasDisplayName(ctx)); err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("crear categoría: %w", err)
		}
		winner, ferr := r.Find(ctx, kind, label)
		if ferr != nil {
			return nil, ferr
		}
		if winner == nil {
			return nil, &domain.ReconciliationConflictError{Key: string(kind) + "/" + label, Err: err}
		}
		return &ClassificationResult{ID: winner.ID, Kind: winner.Kind, Label: winner.Label}, nil
	}
	r.log.Debug().Int64("id", c.ID).Str("label", label).Msg("categoría creada")
	return &ClassificationResult{ID: c.ID, Kind: c.Kind, Label: c.Label, WasCreated: true}, nil
}

func (r *ClassificationReconciler) hasDisplayName(ctx context.Context) bool {
	if r.caps == nil {
		return false
	}
	caps, err := r.caps.Capabilities(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("sondeo de esquema falló, se omite la columna nome")
		return false
	}
	return caps.ClassificationHasDisplayName
}
