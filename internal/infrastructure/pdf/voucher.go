// Package pdf genera el comprobante A4 de un movimiento del libro (conta a pagar o a receber).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tipo de movimiento  │  N° Documento + Emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Razón social + CPF/CNPJ                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Identificación | Vencimiento | Valor | Situación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLASIFICACIONES + TOTAL                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ledger.VoucherRenderer = (*VoucherGenerator)(nil)

// VoucherGenerator implementa ledger.VoucherRenderer usando Maroto v2.
type VoucherGenerator struct{}

// NewVoucherGenerator construye el generador.
func NewVoucherGenerator() *VoucherGenerator { return &VoucherGenerator{} }

// RenderVoucher genera el PDF y devuelve sus bytes.
func (g *VoucherGenerator) RenderVoucher(d *ledger.MovementDetail) ([]byte, error) {
	if d == nil || d.Movement == nil {
		return nil, fmt.Errorf("pdf: movimiento vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Movimento %d", d.Movement.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d.Movement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(counterpartyRow(d.Person))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(installmentRows(d.Installments)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(classificationsRow(d.Classifications))
	m.AddRows(totalRow(d.Movement))

	if d.Movement.Note != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(d.Movement.Note, props.Text{Size: 7, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(mov *entity.Movement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(directionTitle(mov.Direction), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Movimento #%d", mov.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DOCUMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(mov.DocumentNumber, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emissão: "+mov.IssueDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func counterpartyRow(p *entity.Person) core.Row {
	name, taxID := "—", "—"
	if p != nil {
		name = nonEmpty(p.LegalName, "—")
		taxID = nonEmpty(p.TaxID, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CONTRAPARTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("CPF/CNPJ: "+taxID, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nº", 1, align.Center),
		h("Identificação", 3, align.Left),
		h("Vencimento", 3, align.Center),
		h("Valor", 3, align.Right),
		h("Situação", 2, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func installmentRows(items []*entity.Installment) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, i := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i.Number), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(i.Identifier, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(i.DueDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(formatBRL(i.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(string(i.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func classificationsRow(cs []*entity.Classification) core.Row {
	labels := make([]string, 0, len(cs))
	for _, c := range cs {
		labels = append(labels, c.Label)
	}
	return row.New(10).Add(col.New(12).Add(
		text.New("CLASSIFICAÇÕES: "+nonEmpty(strings.Join(labels, ", "), "—"), props.Text{
			Size: 8, Top: 3, Color: colorGray,
		}),
	))
}

func totalRow(mov *entity.Movement) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatBRL(mov.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func directionTitle(d entity.Direction) string {
	if d == entity.DirectionReceivable {
		return "CONTA A RECEBER"
	}
	return "CONTA A PAGAR"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formato monetario brasileño. Ej: 1234.5 → "R$ 1.234,50".
func formatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + groupThousands(intPart) + "," + frac
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
