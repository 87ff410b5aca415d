package reconciliation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/reconciliation"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Personas
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcilePerson_Determinista(t *testing.T) {
	repos := memory.New()
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)
	ctx := context.Background()
	in := reconciliation.PersonInput{Role: entity.PersonRoleSupplier, LegalName: "CTVA LTDA", TaxID: "47180625005881"}

	first, err := rec.Reconcile(ctx, in)
	require.NoError(t, err)
	assert.True(t, first.WasCreated)
	assert.Equal(t, "47.180.625/0058-81", first.TaxID, "el documento se guarda con máscara")

	second, err := rec.Reconcile(ctx, in)
	require.NoError(t, err)
	assert.False(t, second.WasCreated)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repos.Store.Counts().Persons)
}

func TestReconcilePerson_ConflictoDeRol(t *testing.T) {
	repos := memory.New()
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)
	ctx := context.Background()

	billed, err := rec.Reconcile(ctx, reconciliation.PersonInput{
		Role: entity.PersonRoleBilled, LegalName: "FAZENDA BOA VISTA", TaxID: "11.444.777/0001-61",
	})
	require.NoError(t, err)

	res, err := rec.Reconcile(ctx, reconciliation.PersonInput{
		Role: entity.PersonRoleSupplier, LegalName: "Fazenda Boa Vista Ltda", TaxID: "11.444.777/0001-61",
	})
	require.NoError(t, err)
	assert.Equal(t, billed.ID, res.ID)
	assert.True(t, res.RoleChanged)
	assert.Equal(t, entity.PersonRoleBilled, res.PreviousRole)

	stored, err := repos.Persons.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PersonRoleSupplier, stored.Role)
	assert.Equal(t, 1, repos.Store.Counts().Persons, "no se inserta una fila nueva")
}

func TestReconcilePerson_NombreSinDocumento(t *testing.T) {
	repos := memory.New()
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)
	ctx := context.Background()

	a, err := rec.Reconcile(ctx, reconciliation.PersonInput{Role: entity.PersonRoleSupplier, LegalName: "Mercado Central"})
	require.NoError(t, err)
	b, err := rec.Reconcile(ctx, reconciliation.PersonInput{Role: entity.PersonRoleSupplier, LegalName: "  MERCADO CENTRAL "})
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID, "coincidencia única por nombre se reutiliza")
}

func TestReconcilePerson_NombreAmbiguo(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	for _, doc := range []string{"11.444.777/0001-61", "47.180.625/0058-81"} {
		require.NoError(t, repos.Persons.Create(ctx, &entity.Person{
			Role: entity.PersonRoleSupplier, LegalName: "AGRO LTDA", TaxID: doc, Active: true,
		}))
	}
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)

	match, err := rec.Find(ctx, "Agro Ltda", "")
	require.NoError(t, err)
	assert.False(t, match.Found())
	assert.True(t, match.Ambiguous())

	res, err := rec.Reconcile(ctx, reconciliation.PersonInput{Role: entity.PersonRoleSupplier, LegalName: "Agro Ltda"})
	require.NoError(t, err)
	assert.True(t, res.WasCreated)
	assert.Equal(t, 2, res.AmbiguousCandidates)

	// El documento decide aunque el nombre sea ambiguo.
	match, err = rec.Find(ctx, "Agro Ltda", "47180625005881")
	require.NoError(t, err)
	require.True(t, match.Found())
	assert.True(t, match.ByTaxID)
}

func TestReconcilePerson_CarreraPorDocumento(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	var winnerID int64
	repos.Persons.BeforeCreate = func(p *entity.Person) {
		winner := &entity.Person{Role: entity.PersonRoleBilled, LegalName: "OUTRA EXECUCAO", TaxID: p.TaxID, Active: true}
		require.NoError(t, repos.Persons.Create(ctx, winner))
		winnerID = winner.ID
	}
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)

	res, err := rec.Reconcile(ctx, reconciliation.PersonInput{
		Role: entity.PersonRoleSupplier, LegalName: "CTVA", TaxID: "47.180.625/0058-81",
	})
	require.NoError(t, err)
	assert.Equal(t, winnerID, res.ID, "el perdedor reutiliza la fila ganadora")
	assert.False(t, res.WasCreated)
	assert.True(t, res.RoleChanged)
	assert.Equal(t, 1, repos.Store.Counts().Persons)
}

func TestReconcilePerson_NombreSustitutoSoloPorDocumento(t *testing.T) {
	repos := memory.New()
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)
	ctx := context.Background()
	in := func(doc string) reconciliation.PersonInput {
		return reconciliation.PersonInput{
			Role: entity.PersonRoleSupplier, LegalName: "FORNECEDOR NÃO IDENTIFICADO", TaxID: doc, Placeholder: true,
		}
	}

	anon, err := rec.Reconcile(ctx, in(""))
	require.NoError(t, err)
	a, err := rec.Reconcile(ctx, in("11.222.333/0001-81"))
	require.NoError(t, err)
	b, err := rec.Reconcile(ctx, in("44.555.666/0001-72"))
	require.NoError(t, err)

	assert.True(t, a.WasCreated)
	assert.True(t, b.WasCreated)
	assert.NotEqual(t, anon.ID, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "documentos distintos no se fusionan bajo el nombre sustituto")
	assert.Equal(t, "11.222.333/0001-81", a.TaxID)

	again, err := rec.Reconcile(ctx, in("11222333000181"))
	require.NoError(t, err)
	assert.Equal(t, a.ID, again.ID)

	anonAgain, err := rec.Reconcile(ctx, in(""))
	require.NoError(t, err)
	assert.Equal(t, anon.ID, anonAgain.ID, "sin documento se reutiliza la fila sin documento")
	assert.Equal(t, 3, repos.Store.Counts().Persons)
}

func TestReconcilePerson_AsignaDocumentoAFilaSinDocumento(t *testing.T) {
	repos := memory.New()
	rec := reconciliation.NewPersonReconciler(repos.Persons, nil)
	ctx := context.Background()

	first, err := rec.Reconcile(ctx, reconciliation.PersonInput{Role: entity.PersonRoleSupplier, LegalName: "Mercado Central"})
	require.NoError(t, err)

	res, err := rec.Reconcile(ctx, reconciliation.PersonInput{
		Role: entity.PersonRoleSupplier, LegalName: "MERCADO CENTRAL", TaxID: "11222333000181",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.ID)
	assert.True(t, res.TaxIDAttached)
	assert.Equal(t, "11.222.333/0001-81", res.TaxID)

	stored, err := repos.Persons.FindActiveByTaxID(ctx, "11.222.333/0001-81")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)

	// Con el documento ya registrado, otro documento con el mismo nombre es otra persona.
	other, err := rec.Reconcile(ctx, reconciliation.PersonInput{
		Role: entity.PersonRoleSupplier, LegalName: "Mercado Central", TaxID: "44.555.666/0001-72",
	})
	require.NoError(t, err)
	assert.True(t, other.WasCreated)
	assert.Equal(t, 2, repos.Store.Counts().Persons)
}

func TestReconcilePerson_EntradaInvalida(t *testing.T) {
	rec := reconciliation.NewPersonReconciler(memory.New().Persons, nil)
	_, err := rec.Reconcile(context.Background(), reconciliation.PersonInput{Role: entity.PersonRoleSupplier, TaxID: "N/A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcileClassification_BuscaOCrea(t *testing.T) {
	repos := memory.New()
	probe := ledger.NewSchemaProbe(repos.Inspector, nil)
	rec := reconciliation.NewClassificationReconciler(repos.Classifications, probe, nil)
	ctx := context.Background()

	a, err := rec.Reconcile(ctx, entity.ClassificationExpense, "insumos_agricolas")
	require.NoError(t, err)
	assert.True(t, a.WasCreated)
	assert.Equal(t, "INSUMOS_AGRICOLAS", a.Label)
	assert.Equal(t, "INSUMOS_AGRICOLAS", repos.Classifications.DisplayNames[a.ID], "con columna nome se llena igual a la etiqueta")

	b, err := rec.Reconcile(ctx, entity.ClassificationExpense, "INSUMOS_AGRICOLAS")
	require.NoError(t, err)
	assert.False(t, b.WasCreated)
	assert.Equal(t, a.ID, b.ID)

	c, err := rec.Reconcile(ctx, entity.ClassificationRevenue, "INSUMOS_AGRICOLAS")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID, "el tipo forma parte de la clave")
}

func TestReconcileClassification_EtiquetaVacia(t *testing.T) {
	repos := memory.New()
	repos.Store.Columns["classificacao.nome"] = false
	rec := reconciliation.NewClassificationReconciler(repos.Classifications, ledger.NewSchemaProbe(repos.Inspector, nil), nil)

	res, err := rec.Reconcile(context.Background(), entity.ClassificationExpense, "   ")
	require.NoError(t, err)
	assert.Equal(t, entity.UnclassifiedLabel, res.Label)
	assert.Empty(t, repos.Classifications.DisplayNames, "sin columna nome no se llena")
}
