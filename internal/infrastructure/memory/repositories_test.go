package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create siempre inserta filas activas, igual que el adaptador Postgres
// ──────────────────────────────────────────────────────────────────────────────

func TestClassificationCreate_SiempreActiva(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()

	c := &entity.Classification{Kind: entity.ClassificationExpense, Label: "FRETE"}
	require.NoError(t, repos.Classifications.Create(ctx, c, false))
	assert.True(t, c.Active)

	stored, err := repos.Classifications.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Active)

	found, err := repos.Classifications.FindActive(ctx, entity.ClassificationExpense, "frete")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)

	dup := &entity.Classification{Kind: entity.ClassificationExpense, Label: " Frete "}
	assert.ErrorIs(t, repos.Classifications.Create(ctx, dup, false), domain.ErrDuplicate)
}

func TestPersonCreate_SiempreActivaYDocumentoUnico(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()

	p := &entity.Person{Role: entity.PersonRoleSupplier, LegalName: "CTVA", TaxID: "47.180.625/0058-81"}
	require.NoError(t, repos.Persons.Create(ctx, p))
	assert.True(t, p.Active)

	found, err := repos.Persons.FindActiveByTaxID(ctx, "47.180.625/0058-81")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, p.ID, found.ID)

	dup := &entity.Person{Role: entity.PersonRoleBilled, LegalName: "OUTRA", TaxID: "47.180.625/0058-81"}
	assert.ErrorIs(t, repos.Persons.Create(ctx, dup), domain.ErrDuplicate)
}
