package extraction

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// Términos de la naturaleza de la operación. Los de pago se revisan primero.
var (
	payableTerms = []string{
		"compra", "aquisição", "aquisiçao", "serviço", "servico", "despesa", "conta",
		"receb.de terceiros", "receb de terceiros",
		"merc.aág.receb.de terceiros", "merc aág receb de terceiros",
	}
	receivableTerms = []string{
		"venda", "prestação", "prestacao", "receita", "faturamento",
		"comercialização", "comercializacao", "revenda",
	}
)

// DirectionPolicy decide si la nota es a pagar o a recibir.
// OrganizationsDefault se usa cuando ambas partes son PJ y la naturaleza no decide.
type DirectionPolicy struct {
	OrganizationsDefault entity.Direction
}

// DefaultDirectionPolicy PJ-PJ sin indicio => a pagar.
func DefaultDirectionPolicy() DirectionPolicy {
	return DirectionPolicy{OrganizationsDefault: entity.DirectionPayable}
}

// Determine aplica las reglas en orden y devuelve la dirección junto con el motivo para la traza.
func (p DirectionPolicy) Determine(inv *entity.ExtractedInvoice) (entity.Direction, string) {
	if inv.BilledParty.Kind == entity.PartyIndividual {
		return entity.DirectionPayable, "destinatario pessoa física (CPF)"
	}

	nature := cases.Lower(language.Und).String(inv.OperationNature)
	for _, term := range payableTerms {
		if strings.Contains(nature, term) {
			return entity.DirectionPayable, "natureza da operação contém \"" + term + "\""
		}
	}
	for _, term := range receivableTerms {
		if strings.Contains(nature, term) {
			return entity.DirectionReceivable, "natureza da operação contém \"" + term + "\""
		}
	}

	if inv.Supplier.Kind == entity.PartyOrganization && inv.BilledParty.Kind == entity.PartyOrganization {
		d := p.OrganizationsDefault
		if !d.Valid() {
			d = entity.DirectionPayable
		}
		return d, "ambas as partes pessoa jurídica (padrão configurado)"
	}
	return entity.DirectionPayable, "sem indícios (padrão)"
}
