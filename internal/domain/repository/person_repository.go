package repository

import (
	"context"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// PersonRepository define el puerto de persistencia para Person.
// Las búsquedas Find* consideran solo registros activos y devuelven (nil, nil) si no hay coincidencia.
type PersonRepository interface {
	FindActiveByTaxID(ctx context.Context, taxID string) (*entity.Person, error)
	// FindActiveByName compara UPPER(TRIM(nombre)); resultados ordenados por ID.
	FindActiveByName(ctx context.Context, legalName string) ([]*entity.Person, error)
	// Create asigna ID y CreatedAt. Devuelve domain.ErrDuplicate si el documento ya existe entre activos.
	Create(ctx context.Context, p *entity.Person) error
	UpdateRole(ctx context.Context, id int64, role entity.PersonRole) error
	Update(ctx context.Context, p *entity.Person) error
	GetByID(ctx context.Context, id int64) (*entity.Person, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Person, error)
	// SetActive devuelve domain.ErrNotFound si el ID no existe.
	SetActive(ctx context.Context, id int64, active bool) error
}
