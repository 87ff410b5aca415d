package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", formatBRL(decimal.Zero))
	assert.Equal(t, "R$ 1.234,50", formatBRL(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 1.000.000,00", formatBRL(decimal.NewFromInt(1000000)))
	assert.Equal(t, "R$ -10,01", formatBRL(decimal.RequireFromString("-10.01")))
}

func TestRenderVoucher_GeneraPDF(t *testing.T) {
	issue := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d := &ledger.MovementDetail{
		Movement: &entity.Movement{
			ID: 7, Direction: entity.DirectionPayable, DocumentNumber: "000123",
			IssueDate: issue, TotalValue: decimal.RequireFromString("1500.00"),
			Note: "Processado automaticamente - AGRO LTDA",
		},
		Person: &entity.Person{LegalName: "AGRO LTDA", TaxID: "12.345.678/0001-95"},
		Installments: []*entity.Installment{
			{Number: 1, Identifier: "7_1", DueDate: issue.AddDate(0, 1, 0), Value: decimal.RequireFromString("750.00"), Status: entity.InstallmentOpen},
			{Number: 2, Identifier: "7_2", DueDate: issue.AddDate(0, 2, 0), Value: decimal.RequireFromString("750.00"), Status: entity.InstallmentOpen},
		},
		Classifications: []*entity.Classification{{Label: "INSUMOS AGRÍCOLAS"}},
	}

	out, err := NewVoucherGenerator().RenderVoucher(d)
	require.NoError(t, err)
	assert.True(t, len(out) > 100)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderVoucher_SinMovimiento(t *testing.T) {
	_, err := NewVoucherGenerator().RenderVoucher(&ledger.MovementDetail{})
	assert.Error(t, err)
}
