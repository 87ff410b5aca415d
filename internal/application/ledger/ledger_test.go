package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

func newMaterializer(t *testing.T, repos *memory.Repositories) *ledger.Materializer {
	t.Helper()
	probe := ledger.NewSchemaProbe(repos.Inspector, nil)
	return ledger.NewMaterializer(repos.Tx, probe, nil).WithClock(func() time.Time { return fixedNow })
}

func intPtr(n int) *int { return &n }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de fechas
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"05/03/2025", "2025-03-05", true},
		{"5/3/2025", "2025-03-05", true},
		{"31/12/1999", "1999-12-31", true},
		{"2025-03-05", "2025-03-05", true},
		{"2024-02-29", "2024-02-29", true},
		{"2025-03-05T10:00:00Z", "2025-03-05", true},
		{"31/02/2025", "2025-03-10", false},
		{"2025-13-01", "2025-03-10", false},
		{"01/01/0000", "2025-03-10", false},
		{"0000-01-01", "2025-03-10", false},
		{"ontem", "2025-03-10", false},
		{"", "2025-03-10", false},
	}
	for _, c := range cases {
		got, ok := ledger.NormalizeDate(c.in, fixedNow)
		assert.Equal(t, c.want, got, "entrada %q", c.in)
		assert.Equal(t, c.ok, ok, "entrada %q", c.in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Parcelas
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanInstallments_SinParcelas(t *testing.T) {
	plan, warnings, err := ledger.PlanInstallments(dec("163520.00"), nil, fixedNow)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, 1, plan[0].Number)
	assert.True(t, dec("163520.00").Equal(plan[0].Value))
	assert.Equal(t, "2025-03-10", plan[0].DueDate.Format("2006-01-02"))
	assert.NotEmpty(t, warnings)
}

func TestPlanInstallments_CompletaNumerosYValores(t *testing.T) {
	v := dec("40")
	plan, _, err := ledger.PlanInstallments(dec("100"), []ledger.InstallmentInput{
		{DueDate: "10/04/2025", Value: &v},
		{DueDate: "10/05/2025"},
	}, fixedNow)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Number)
	assert.Equal(t, 2, plan[1].Number)
	assert.True(t, dec("40").Equal(plan[0].Value))
	assert.True(t, dec("50").Equal(plan[1].Value), "valor ausente = total / cantidad")
	assert.Equal(t, "2025-05-10", plan[1].DueDate.Format("2006-01-02"))
}

func TestPlanInstallments_RenumeraHuecos(t *testing.T) {
	plan, warnings, err := ledger.PlanInstallments(dec("90"), []ledger.InstallmentInput{
		{Number: intPtr(1)}, {Number: intPtr(3)}, {Number: intPtr(3)},
	}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{plan[0].Number, plan[1].Number, plan[2].Number})
	assert.NotEmpty(t, warnings)
}

// ──────────────────────────────────────────────────────────────────────────────
// Materialización
// ──────────────────────────────────────────────────────────────────────────────

func TestMaterialize_ParcelaUnicaPorDefecto(t *testing.T) {
	repos := memory.New()
	m := newMaterializer(t, repos)

	out, err := m.Materialize(context.Background(), ledger.Request{
		Movement: ledger.MovementInput{
			Direction: entity.DirectionPayable, PersonID: 1, DocumentNumber: "123",
			IssueDate: "05/03/2025", TotalValue: dec("163520.00"), Note: "nota",
		},
		ClassificationIDs: []int64{7},
	})
	require.NoError(t, err)
	require.Len(t, out.Installments, 1)

	inst := out.Installments[0]
	assert.Equal(t, 1, inst.Number)
	assert.True(t, dec("163520.00").Equal(inst.Value))
	assert.Equal(t, entity.InstallmentOpen, inst.Status)
	assert.Equal(t, "1_1", inst.Identifier)
	assert.Equal(t, repository.DocumentColumnDocumento, out.DocumentColumn)

	mov, err := repos.Movements.GetByID(context.Background(), out.MovementID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-05", mov.IssueDate.Format("2006-01-02"))
	assert.Equal(t, "123", mov.DocumentNumber)
}

func TestMaterialize_VinculoIdempotente(t *testing.T) {
	repos := memory.New()
	m := newMaterializer(t, repos)
	ctx := context.Background()

	out, err := m.Materialize(ctx, ledger.Request{
		Movement:          ledger.MovementInput{Direction: entity.DirectionPayable, PersonID: 1, TotalValue: dec("10")},
		ClassificationIDs: []int64{7, 7},
	})
	require.NoError(t, err)
	assert.Len(t, out.Linked, 1)

	created, err := m.LinkClassification(ctx, out.MovementID, 7)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, repos.Store.Counts().Links)

	links, err := repos.Links.ListByMovement(ctx, out.MovementID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.True(t, links[0].Value.Valid, "con columna valor se guarda 0")
	assert.True(t, links[0].Value.Decimal.IsZero())
}

func TestMaterialize_EsquemaSinColumnasOpcionales(t *testing.T) {
	repos := memory.New()
	repos.Store.Columns = map[string]bool{"movimentocontas.numeronotafiscal": true}
	m := newMaterializer(t, repos)

	out, err := m.Materialize(context.Background(), ledger.Request{
		Movement:          ledger.MovementInput{Direction: entity.DirectionReceivable, PersonID: 1, DocumentNumber: "9", TotalValue: dec("10")},
		ClassificationIDs: []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, repository.DocumentColumnNotaFiscal, out.DocumentColumn)

	links, _ := repos.Links.ListByMovement(context.Background(), out.MovementID)
	require.Len(t, links, 1)
	assert.False(t, links[0].Value.Valid)

	// El sondeo se guarda: una segunda materialización no vuelve a consultar.
	calls := repos.Inspector.Calls
	_, err = m.Materialize(context.Background(), ledger.Request{
		Movement: ledger.MovementInput{Direction: entity.DirectionPayable, PersonID: 1, TotalValue: dec("1")},
	})
	require.NoError(t, err)
	assert.Equal(t, calls, repos.Inspector.Calls)
}

func TestMaterialize_FalloRevierteTodo(t *testing.T) {
	repos := memory.New()
	repos.Store.FailOn["installment.create"] = errors.New("disco lleno")
	m := newMaterializer(t, repos)

	_, err := m.Materialize(context.Background(), ledger.Request{
		Movement:          ledger.MovementInput{Direction: entity.DirectionPayable, PersonID: 1, TotalValue: dec("10")},
		ClassificationIDs: []int64{1},
	})
	var matErr *domain.MaterializationError
	require.ErrorAs(t, err, &matErr)
	assert.Equal(t, ledger.StepInstallments, matErr.Step)

	counts := repos.Store.Counts()
	assert.Zero(t, counts.Movements)
	assert.Zero(t, counts.Links)
	assert.Zero(t, counts.Installments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mantenimiento
// ──────────────────────────────────────────────────────────────────────────────

func newMovementUseCase(t *testing.T, repos *memory.Repositories) (*ledger.MovementUseCase, *ledger.Materializer) {
	t.Helper()
	probe := ledger.NewSchemaProbe(repos.Inspector, nil)
	mat := ledger.NewMaterializer(repos.Tx, probe, nil)
	uc := ledger.NewMovementUseCase(ledger.MovementDeps{
		Tx: repos.Tx, Movements: repos.Movements, Installments: repos.Installments, Links: repos.Links,
		Persons: repos.Persons, Classifications: repos.Classifications, Probe: probe, Materializer: mat,
	}, nil)
	return uc, mat
}

func TestMovementUseCase_LiquidarYBorrar(t *testing.T) {
	repos := memory.New()
	uc, mat := newMovementUseCase(t, repos)
	ctx := context.Background()

	out, err := mat.Materialize(ctx, ledger.Request{
		Movement: ledger.MovementInput{Direction: entity.DirectionPayable, PersonID: 1, TotalValue: dec("30")},
		Installments: []ledger.InstallmentInput{
			{DueDate: "01/04/2025"}, {DueDate: "01/05/2025"},
		},
	})
	require.NoError(t, err)
	ids := out.InstallmentIDs()
	require.Len(t, ids, 2)

	paid, err := uc.SettleInstallment(ctx, ids[0], "02/04/2025", nil)
	require.NoError(t, err)
	assert.Equal(t, entity.InstallmentPaid, paid.Status)
	assert.True(t, dec("15").Equal(paid.PaidValue.Decimal))

	_, err = uc.SettleInstallment(ctx, ids[0], "", nil)
	assert.ErrorIs(t, err, domain.ErrConflict, "una parcela paga no se liquida dos veces")

	require.NoError(t, uc.Delete(ctx, out.MovementID))
	_, err = uc.Get(ctx, out.MovementID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.SettleInstallment(ctx, ids[1], "", nil)
	assert.ErrorIs(t, err, domain.ErrConflict, "las parcelas se desactivan junto con el movimiento")
}

func TestMovementUseCase_Actualizar(t *testing.T) {
	repos := memory.New()
	uc, mat := newMovementUseCase(t, repos)
	ctx := context.Background()

	out, err := mat.Materialize(ctx, ledger.Request{
		Movement: ledger.MovementInput{Direction: entity.DirectionPayable, PersonID: 1, TotalValue: dec("30")},
	})
	require.NoError(t, err)

	doc, date := "NF-77", "20/02/2025"
	mov, err := uc.Update(ctx, out.MovementID, ledger.MovementUpdate{DocumentNumber: &doc, IssueDate: &date})
	require.NoError(t, err)
	assert.Equal(t, "NF-77", mov.DocumentNumber)
	assert.Equal(t, "2025-02-20", mov.IssueDate.Format("2006-01-02"))

	bad := "amanhã"
	_, err = uc.Update(ctx, out.MovementID, ledger.MovementUpdate{IssueDate: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
