package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlannedInstallment parcela lista para insertar.
type PlannedInstallment struct {
	Number  int
	DueDate time.Time
	Value   decimal.Decimal
}

// PlanInstallments completa las parcelas extraídas:
//   - sin parcelas, una sola con número 1, vencimiento hoy y el valor total;
//   - número ausente => posición + 1; si la numeración no queda 1..n se renumera por posición;
//   - valor ausente => total / cantidad de parcelas, redondeado a centavos;
//   - vencimiento normalizado, hoy si es inválido.
func PlanInstallments(total decimal.Decimal, in []InstallmentInput, now time.Time) ([]PlannedInstallment, []string, error) {
	y, mo, d := now.Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)

	if len(in) == 0 {
		return []PlannedInstallment{{Number: 1, DueDate: today, Value: total}},
			[]string{"nenhuma parcela extraída, criada parcela única com vencimento hoje"}, nil
	}

	var warnings []string
	numbers := make([]*int, len(in))
	for i, p := range in {
		numbers[i] = p.Number
		if p.Number == nil {
			n := i + 1
			numbers[i] = &n
		}
	}
	if !sequential(numbers) {
		warnings = append(warnings, "numeração das parcelas fora de sequência, renumerada por posição")
		for i := range numbers {
			n := i + 1
			numbers[i] = &n
		}
	}

	share := total.Div(decimal.NewFromInt(int64(len(in)))).Round(2)
	out := make([]PlannedInstallment, 0, len(in))
	for i, p := range in {
		if numbers[i] == nil {
			return nil, warnings, fmt.Errorf("parcela na posição %d sem número após atribuição", i+1)
		}
		due, ok := ParseDate(p.DueDate, now)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("vencimento %q da parcela %d inválido, usando a data de hoje", p.DueDate, *numbers[i]))
		}
		value := share
		if p.Value != nil {
			value = *p.Value
		}
		out = append(out, PlannedInstallment{Number: *numbers[i], DueDate: due, Value: value})
	}
	return out, warnings, nil
}

func sequential(numbers []*int) bool {
	for i, n := range numbers {
		if n == nil || *n != i+1 {
			return false
		}
	}
	return true
}
