package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación de repository.PersonRepository sobre la tabla pessoas.
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el repositorio de personas.
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

const personColumns = `idpessoas, tipo, razaosocial, COALESCE(fantasia, ''), COALESCE(cnpjcpf, ''), ativo, datacadastro`

func scanPerson(row pgxScanner) (*entity.Person, error) {
	var p entity.Person
	var role string
	if err := row.Scan(&p.ID, &role, &p.LegalName, &p.TradeName, &p.TaxID, &p.Active, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Role = entity.PersonRole(role)
	return &p, nil
}

func (r *PersonRepo) FindActiveByTaxID(ctx context.Context, taxID string) (*entity.Person, error) {
	q := `SELECT ` + personColumns + ` FROM pessoas WHERE ativo AND cnpjcpf = $1 ORDER BY idpessoas LIMIT 1`
	p, err := scanPerson(r.q.QueryRow(ctx, q, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find person by tax id: %w", err)
	}
	return p, nil
}

func (r *PersonRepo) FindActiveByName(ctx context.Context, legalName string) ([]*entity.Person, error) {
	q := `SELECT ` + personColumns + ` FROM pessoas
		WHERE ativo AND UPPER(TRIM(razaosocial)) = UPPER(TRIM($1))
		ORDER BY idpessoas`
	return r.list(ctx, "find persons by name", q, legalName)
}

func (r *PersonRepo) Create(ctx context.Context, p *entity.Person) error {
	const q = `INSERT INTO pessoas (tipo, razaosocial, fantasia, cnpjcpf, ativo, datacadastro)
		VALUES ($1, $2, NULLIF($3, ''), $4, TRUE, NOW())
		RETURNING idpessoas, datacadastro`
	err := r.q.QueryRow(ctx, q, string(p.Role), p.LegalName, p.TradeName, nullIfEmpty(p.TaxID)).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert person: %w", err)
	}
	p.Active = true
	return nil
}

func (r *PersonRepo) UpdateRole(ctx context.Context, id int64, role entity.PersonRole) error {
	const q = `UPDATE pessoas SET tipo = $2 WHERE idpessoas = $1`
	tag, err := r.q.Exec(ctx, q, id, string(role))
	if err != nil {
		return fmt.Errorf("update person role: %w", err)
	}
	return expectOne(tag)
}

func (r *PersonRepo) Update(ctx context.Context, p *entity.Person) error {
	const q = `UPDATE pessoas SET tipo = $2, razaosocial = $3, fantasia = NULLIF($4, ''), cnpjcpf = $5
		WHERE idpessoas = $1`
	tag, err := r.q.Exec(ctx, q, p.ID, string(p.Role), p.LegalName, p.TradeName, nullIfEmpty(p.TaxID))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update person: %w", err)
	}
	return expectOne(tag)
}

func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	q := `SELECT ` + personColumns + ` FROM pessoas WHERE idpessoas = $1`
	p, err := scanPerson(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

func (r *PersonRepo) List(ctx context.Context, limit, offset int) ([]*entity.Person, error) {
	limit, offset = clampPage(limit, offset)
	q := `SELECT ` + personColumns + ` FROM pessoas ORDER BY razaosocial, idpessoas LIMIT $1 OFFSET $2`
	return r.list(ctx, "list persons", q, limit, offset)
}

// SetActive reactivar puede chocar con otra persona activa con el mismo documento (ErrDuplicate).
func (r *PersonRepo) SetActive(ctx context.Context, id int64, active bool) error {
	const q = `UPDATE pessoas SET ativo = $2 WHERE idpessoas = $1`
	tag, err := r.q.Exec(ctx, q, id, active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("set person active: %w", err)
	}
	return expectOne(tag)
}

func (r *PersonRepo) list(ctx context.Context, op, q string, args ...any) ([]*entity.Person, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []*entity.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
