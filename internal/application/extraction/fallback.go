package extraction

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/taxid"
)

var errBlankText = errors.New("texto da nota vazio")

var (
	reCNPJ      = regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b|\b\d{14}\b`)
	reCPF       = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b|\b\d{11}\b`)
	reLegalName = regexp.MustCompile(`(?im)^[ \t]*(?:NOME[ \t]*/[ \t]*)?RAZ[ÃA]O[ \t]+SOCIAL[ \t]*[:\-]?[ \t]*(\S[^\n]*)$`)
	reNumber    = regexp.MustCompile(`(?i)\bN(?:[º°o]|úmero|umero)\.?[ \t]*:?[ \t]*(\d[\d.]*\d|\d)`)
	reTotalNota = regexp.MustCompile(`(?i)VALOR\s+TOTAL\s+DA\s+NOTA[\s:\-]*(?:R\$\s*)?(\d[\d.]*,\d{2}|\d+\.\d{2})`)
	reTotal     = regexp.MustCompile(`(?i)TOTAL\s+DA\s+NOTA[\s:\-]*(?:R\$\s*)?(\d[\d.]*,\d{2}|\d+\.\d{2})`)
	reCurrency  = regexp.MustCompile(`R\$\s*(\d[\d.]*,\d{2}|\d+\.\d{2})`)
	reIssue     = regexp.MustCompile(`(?i)EMISS[ÃA]O[^\d\n]{0,40}(\d{2}/\d{2}/\d{4})`)
	reDate      = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)
	reNature    = regexp.MustCompile(`(?i)NATUREZA\s+DA\s+OPERA[ÇC][ÃA]O[ \t]*[:\-]?[ \t]*([^\n]*)`)
)

// extractFallback extrae por expresiones regulares un registro mínimo cuando el modelo no está disponible.
// Solo falla si no hay texto que analizar.
func extractFallback(text string) (*entity.ExtractedInvoice, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errBlankText
	}

	inv := &entity.ExtractedInvoice{
		OperationNature: notAvailable,
		Source:          entity.SourceFallback,
		Categories:      []string{},
	}

	cnpjs := uniqueTaxIDs(reCNPJ.FindAllString(text, -1))
	cpfs := uniqueTaxIDs(reCPF.FindAllString(text, -1))
	names := reLegalName.FindAllStringSubmatch(text, -1)

	inv.Supplier.Kind = entity.PartyOrganization
	if len(cnpjs) > 0 {
		inv.Supplier.CNPJ = cnpjs[0]
	}
	if len(names) > 0 {
		inv.Supplier.LegalName = strings.TrimSpace(names[0][1])
	}

	switch {
	case len(cpfs) > 0:
		inv.BilledParty.CPF = cpfs[0]
	case len(cnpjs) > 1:
		inv.BilledParty.CNPJ = cnpjs[1]
	}
	inv.BilledParty.Name = notAvailable
	if len(names) > 1 {
		inv.BilledParty.Name = strings.TrimSpace(names[1][1])
	}
	typeBilledParty(&inv.BilledParty)

	if m := reNumber.FindStringSubmatch(text); m != nil {
		inv.InvoiceNumber = strings.ReplaceAll(m[1], ".", "")
	}
	inv.Total = findTotal(text)
	if m := reIssue.FindStringSubmatch(text); m != nil {
		inv.IssueDate = m[1]
	} else if m := reDate.FindStringSubmatch(text); m != nil {
		inv.IssueDate = m[1]
	}
	if nature := findNature(text); nature != "" {
		inv.OperationNature = nature
	}
	return inv, nil
}

func uniqueTaxIDs(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		d := taxid.Digits(r)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, taxid.Format(d))
	}
	return out
}

// findTotal: "VALOR TOTAL DA NOTA", luego "TOTAL DA NOTA", luego el mayor valor en R$.
func findTotal(text string) *float64 {
	for _, re := range []*regexp.Regexp{reTotalNota, reTotal} {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := NormalizeNumber(m[1]); v != nil {
				return v
			}
		}
	}
	var values []float64
	for _, m := range reCurrency.FindAllStringSubmatch(text, -1) {
		if v := NormalizeNumber(m[1]); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	sort.Float64s(values)
	largest := values[len(values)-1]
	return &largest
}

// findNature devuelve el texto tras la etiqueta o, si está sola en su línea, la línea siguiente no vacía.
func findNature(text string) string {
	loc := reNature.FindStringSubmatchIndex(text)
	if loc == nil {
		return ""
	}
	if same := strings.TrimSpace(text[loc[2]:loc[3]]); same != "" {
		return same
	}
	for _, line := range strings.Split(text[loc[1]:], "\n") {
		if l := strings.TrimSpace(line); l != "" {
			return l
		}
	}
	return ""
}
