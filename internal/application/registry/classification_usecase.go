package registry

import (
	"context"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/reconciliation"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

// ClassificationUseCase casos de uso para categorías.
type ClassificationUseCase struct {
	repo repository.ClassificationRepository
	caps reconciliation.CapabilitiesProvider
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(repo repository.ClassificationRepository, caps reconciliation.CapabilitiesProvider) *ClassificationUseCase {
	return &ClassificationUseCase{repo: repo, caps: caps}
}

// Create da de alta una categoría con la etiqueta en mayúsculas.
func (uc *ClassificationUseCase) Create(ctx context.Context, in dto.ClassificationRequest) (*dto.ClassificationResponse, error) {
	kind := entity.ClassificationKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	label := reconciliation.CanonicalLabel(in.Label)
	existing, err := uc.repo.FindActive(ctx, kind, label)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	withName := false
	if uc.caps != nil {
		if caps, err := uc.caps.Capabilities(ctx); err == nil {
			withName = caps.ClassificationHasDisplayName
		}
	}
	c := &entity.Classification{Kind: kind, Label: label, Active: true}
	if err := uc.repo.Create(ctx, c, withName); err != nil {
		return nil, err
	}
	return toClassificationResponse(c), nil
}

// Get devuelve una categoría o domain.ErrNotFound.
func (uc *ClassificationUseCase) Get(ctx context.Context, id int64) (*dto.ClassificationResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClassificationResponse(c), nil
}

// List lista categorías por ID.
func (uc *ClassificationUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClassificationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClassificationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClassificationResponse(c))
	}
	return out, nil
}

// Update cambia tipo y etiqueta.
func (uc *ClassificationUseCase) Update(ctx context.Context, id int64, in dto.ClassificationRequest) (*dto.ClassificationResponse, error) {
	kind := entity.ClassificationKind(in.Kind)
	if !kind.Valid() {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Kind = kind
	c.Label = reconciliation.CanonicalLabel(in.Label)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClassificationResponse(c), nil
}

// Deactivate baja lógica.
func (uc *ClassificationUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, false)
}

// Activate reactiva; domain.ErrDuplicate si ya hay una activa con el mismo tipo y etiqueta.
func (uc *ClassificationUseCase) Activate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, true)
}

func toClassificationResponse(c *entity.Classification) *dto.ClassificationResponse {
	return &dto.ClassificationResponse{ID: c.ID, Kind: string(c.Kind), Label: c.Label, Active: c.Active}
}
