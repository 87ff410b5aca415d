package entity

// PartyKind tipo de la contraparte según su documento.
type PartyKind string

const (
	PartyIndividual   PartyKind = "PF"  // CPF
	PartyOrganization PartyKind = "PJ"  // CNPJ
	PartyUnknown      PartyKind = "N/A" // sin documento reconocible
)

// ExtractionSource origen de los datos extraídos.
type ExtractionSource string

const (
	SourceModel    ExtractionSource = "model"
	SourceFallback ExtractionSource = "fallback"
)

// InvoiceSupplier emisor de la nota. Siempre PJ.
type InvoiceSupplier struct {
	LegalName string    `json:"razao_social"`
	TradeName string    `json:"fantasia"`
	CNPJ      string    `json:"cnpj"`
	Kind      PartyKind `json:"tipo"`
	Address   string    `json:"endereco"`
}

// InvoiceBilledParty destinatario de la nota. Si hay CPF, Kind es PF y CNPJ queda vacío.
type InvoiceBilledParty struct {
	Name    string    `json:"nome"`
	CPF     string    `json:"cpf"`
	CNPJ    string    `json:"cnpj"`
	Kind    PartyKind `json:"tipo"`
	Address string    `json:"endereco"`
}

// TaxID devuelve el documento vigente del destinatario según su tipo.
func (b InvoiceBilledParty) TaxID() string {
	if b.Kind == PartyIndividual {
		return b.CPF
	}
	return b.CNPJ
}

// InvoiceLineItem producto o servicio de la nota. Los valores nulos no se pudieron interpretar.
type InvoiceLineItem struct {
	Description string   `json:"descricao"`
	Quantity    *float64 `json:"quantidade"`
	UnitPrice   *float64 `json:"valor_unitario"`
	Total       *float64 `json:"valor_total"`
}

// InvoiceInstallment condición de pago extraída (duplicata).
type InvoiceInstallment struct {
	Number  *int     `json:"numero"`
	DueDate string   `json:"data_vencimento"`
	Value   *float64 `json:"valor"`
}

// ExtractedInvoice registro tipado y normalizado de una nota fiscal.
// Es el único formato que cruza la frontera de la extracción.
type ExtractedInvoice struct {
	Supplier         InvoiceSupplier      `json:"fornecedor"`
	BilledParty      InvoiceBilledParty   `json:"cliente"`
	InvoiceNumber    string               `json:"numero_nota_fiscal"`
	IssueDate        string               `json:"data_emissao"`
	Freight          float64              `json:"valor_frete"`
	Items            []InvoiceLineItem    `json:"produtos"`
	InstallmentCount *int                 `json:"quantidade_parcelas"`
	Installments     []InvoiceInstallment `json:"parcelas"`
	Total            *float64             `json:"valor_total"`
	Categories       []string             `json:"classificacao_despesa"`
	OperationNature  string               `json:"natureza_operacao"`
	Direction        Direction            `json:"tipo_conta"`
	Source           ExtractionSource     `json:"origem"`
}

// TotalOrZero devuelve el total o 0 si no fue extraído.
func (inv *ExtractedInvoice) TotalOrZero() float64 {
	if inv.Total == nil {
		return 0
	}
	return *inv.Total
}
