package extraction

import (
	"math"
	"strconv"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

const notAvailable = "N/A"

// NormalizeNumber interpreta "1234.56", "1.234,56" y "1234,56". Devuelve nil si no es numérico.
//
// Regla: con punto y coma se eliminan los puntos y la coma pasa a punto; solo con coma,
// la coma pasa a punto; cualquier coma restante se elimina.
func NormalizeNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// present indica si el campo trae un valor real (ni vacío ni "N/A").
func present(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, notAvailable)
}

// typeBilledParty aplica la tipificación: CPF presente => PF y CNPJ vacío; si no, CNPJ => PJ; si no, N/A.
func typeBilledParty(p *entity.InvoiceBilledParty) {
	switch {
	case present(p.CPF):
		p.Kind = entity.PartyIndividual
		p.CNPJ = ""
	case present(p.CNPJ):
		p.Kind = entity.PartyOrganization
		p.CPF = ""
	default:
		p.Kind = entity.PartyUnknown
		p.CPF = ""
		p.CNPJ = ""
	}
}

// filterCategories conserva solo los tokens de la lista blanca, sin repetir y en el orden recibido.
func filterCategories(in []string) []string {
	allowed := make(map[string]struct{}, len(validCategories))
	for _, c := range validCategories {
		allowed[c] = struct{}{}
	}
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		c := strings.TrimSpace(raw)
		if _, ok := allowed[c]; !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func toOrdinal(v *float64) *int {
	if v == nil || *v < 1 {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}

// normalize construye el registro tipado a partir de la salida del modelo.
// La dirección (tipoConta) no se decide aquí.
func normalize(m *modelInvoice) *entity.ExtractedInvoice {
	inv := &entity.ExtractedInvoice{
		InvoiceNumber:    string(m.InvoiceNumber),
		IssueDate:        string(m.IssueDate),
		InstallmentCount: toOrdinal(m.InstallmentCount.v),
		Total:            m.Total.v,
		Categories:       filterCategories(m.Categories),
		OperationNature:  strings.TrimSpace(string(m.OperationNature)),
		Source:           entity.SourceModel,
	}

	if m.Supplier != nil {
		inv.Supplier = entity.InvoiceSupplier{
			LegalName: string(m.Supplier.LegalName),
			TradeName: string(m.Supplier.TradeName),
			CNPJ:      string(m.Supplier.CNPJ),
			Address:   string(m.Supplier.Address),
		}
	}
	inv.Supplier.Kind = entity.PartyOrganization

	if m.Client != nil {
		inv.BilledParty = entity.InvoiceBilledParty{
			Name:    string(m.Client.Name),
			CPF:     string(m.Client.CPF),
			CNPJ:    string(m.Client.CNPJ),
			Address: string(m.Client.Address),
		}
	}
	typeBilledParty(&inv.BilledParty)

	if m.Freight.v != nil {
		inv.Freight = *m.Freight.v
	}
	if inv.OperationNature == "" {
		inv.OperationNature = notAvailable
	}

	for _, it := range m.Items {
		inv.Items = append(inv.Items, entity.InvoiceLineItem{
			Description: string(it.Description),
			Quantity:    it.Quantity.v,
			UnitPrice:   it.UnitPrice.v,
			Total:       it.Total.v,
		})
	}
	for _, p := range m.Installments {
		inv.Installments = append(inv.Installments, entity.InvoiceInstallment{
			Number:  toOrdinal(p.Number.v),
			DueDate: string(p.DueDate),
			Value:   p.Value.v,
		})
	}
	return inv
}
