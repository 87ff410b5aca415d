package extraction

import (
	"math"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/trace"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

const amountTolerance = 0.01

// Discrepancy diferencia detectada por la validación aritmética.
type Discrepancy struct {
	Item     int // índice 1-based del producto; 0 para el total de la nota
	Expected float64
	Stated   float64
}

// checkAmounts recalcula cantidad × valor unitario por producto y la suma contra el total.
// Es solo diagnóstico: registra y nunca falla.
func checkAmounts(inv *entity.ExtractedInvoice, log *logger.Logger, sink trace.Sink) []Discrepancy {
	var out []Discrepancy
	sum := 0.0
	for i, it := range inv.Items {
		if it.Total != nil {
			sum += *it.Total
		}
		if it.Quantity == nil || it.UnitPrice == nil || it.Total == nil {
			continue
		}
		expected := *it.Quantity * *it.UnitPrice
		if math.Abs(expected-*it.Total) > amountTolerance {
			out = append(out, Discrepancy{Item: i + 1, Expected: expected, Stated: *it.Total})
			log.Warn().
				Int("item", i+1).
				Float64("calculated", expected).
				Float64("stated", *it.Total).
				Msg("extraction: el valor del producto no coincide")
		}
	}

	if inv.Total != nil && len(inv.Items) > 0 && math.Abs(sum-*inv.Total) > amountTolerance {
		out = append(out, Discrepancy{Item: 0, Expected: sum, Stated: *inv.Total})
		log.Warn().
			Float64("items_sum", sum).
			Float64("invoice_total", *inv.Total).
			Msg("extraction: la suma de productos difiere del total")
	}

	if len(out) == 0 {
		sink.Add("Validação: valores dos produtos conferem")
	} else {
		sink.Add("Validação: %d divergência(s) de valores (apenas aviso)", len(out))
	}
	return out
}
