// Package registry contiene el alta y mantenimiento administrativo de personas y categorías.
package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/reconciliation"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/taxid"
)

// PersonUseCase casos de uso para personas.
type PersonUseCase struct {
	repo repository.PersonRepository
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(repo repository.PersonRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo}
}

// Create da de alta una persona. El documento debe tener 11 (CPF) o 14 (CNPJ) dígitos
// y no puede pertenecer a otra persona activa.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	role := entity.PersonRole(in.Role)
	if !role.Valid() || strings.TrimSpace(in.LegalName) == "" {
		return nil, domain.ErrInvalidInput
	}
	doc, err := checkTaxID(in.TaxID, true)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.FindActiveByTaxID(ctx, doc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p := &entity.Person{
		Role:      role,
		LegalName: strings.TrimSpace(in.LegalName),
		TradeName: strings.TrimSpace(in.TradeName),
		TaxID:     doc,
		Active:    true,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPersonResponse(p), nil
}

// Get devuelve una persona o domain.ErrNotFound.
func (uc *PersonUseCase) Get(ctx context.Context, id int64) (*dto.PersonResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPersonResponse(p), nil
}

// List lista personas activas e inactivas ordenadas por razón social.
func (uc *PersonUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.PersonResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PersonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPersonResponse(p))
	}
	return out, nil
}

// Update modifica rol, nombres y documento.
func (uc *PersonUseCase) Update(ctx context.Context, id int64, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	role := entity.PersonRole(in.Role)
	if !role.Valid() || strings.TrimSpace(in.LegalName) == "" {
		return nil, domain.ErrInvalidInput
	}
	doc, err := checkTaxID(in.TaxID, false)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Role = role
	p.LegalName = strings.TrimSpace(in.LegalName)
	p.TradeName = strings.TrimSpace(in.TradeName)
	p.TaxID = doc
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPersonResponse(p), nil
}

// Deactivate baja lógica.
func (uc *PersonUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, false)
}

// Activate reactiva; domain.ErrDuplicate si otro activo ya tiene el documento.
func (uc *PersonUseCase) Activate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, true)
}

func checkTaxID(raw string, required bool) (string, error) {
	doc := reconciliation.CanonicalTaxID(raw)
	if doc == "" {
		if required {
			return "", fmt.Errorf("%w: CPF/CNPJ obrigatório", domain.ErrInvalidInput)
		}
		return "", nil
	}
	if taxid.Detect(doc) == taxid.KindUnknown {
		return "", fmt.Errorf("%w: CPF/CNPJ deve ter 11 ou 14 dígitos", domain.ErrInvalidInput)
	}
	return doc, nil
}

func toPersonResponse(p *entity.Person) *dto.PersonResponse {
	return &dto.PersonResponse{
		ID:        p.ID,
		Role:      string(p.Role),
		LegalName: p.LegalName,
		TradeName: p.TradeName,
		TaxID:     p.TaxID,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}
