package extraction

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// modelInvoice formato de salida que pedimos al modelo (claves del prompt).
// Solo vive dentro del paquete: la frontera de la extracción devuelve entity.ExtractedInvoice.
type modelInvoice struct {
	Supplier *struct {
		LegalName flexString `json:"razaoSocial"`
		TradeName flexString `json:"fantasia"`
		CNPJ      flexString `json:"cnpj"`
		Address   flexString `json:"endereco"`
	} `json:"fornecedor"`
	Client *struct {
		Name    flexString `json:"nome"`
		CPF     flexString `json:"cpf"`
		CNPJ    flexString `json:"cnpj"`
		Address flexString `json:"endereco"`
	} `json:"cliente"`
	InvoiceNumber flexString `json:"numeroNotaFiscal"`
	IssueDate     flexString `json:"dataEmissao"`
	Freight       flexNumber `json:"valorFrete"`
	Items         []struct {
		Description flexString `json:"descricao"`
		Quantity    flexNumber `json:"quantidade"`
		UnitPrice   flexNumber `json:"valorUnitario"`
		Total       flexNumber `json:"valorTotal"`
	} `json:"produtos"`
	InstallmentCount flexNumber `json:"quantidadeParcelas"`
	Installments     []struct {
		Number  flexNumber `json:"numero"`
		DueDate flexString `json:"dataVencimento"`
		Value   flexNumber `json:"valor"`
	} `json:"parcelas"`
	Total           flexNumber  `json:"valorTotal"`
	Categories      flexStrings `json:"classificacaoDespesa"`
	OperationNature flexString  `json:"naturezaOperacao"`
}

// flexNumber acepta número JSON, string en notación brasileña o null.
type flexNumber struct {
	v *float64
}

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		f.v = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f.v = NormalizeNumber(s)
		return nil
	}
	n, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		f.v = nil
		return nil
	}
	f.v = &n
	return nil
}

// flexString acepta string, número o null; los números se conservan con su texto JSON.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*f = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
	default:
		*f = flexString(string(b))
	}
	return nil
}

// flexStrings acepta una lista de strings o un único string.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexStrings{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*f = list
	return nil
}
