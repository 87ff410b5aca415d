package extraction

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// invoiceSchema contrato mínimo del objeto devuelto por el modelo. Es permisivo con
// números como string (notación brasileña) y con campos ausentes, pero rechaza formas
// que no se pueden mapear al registro tipado (p. ej. "produtos" como objeto).
const invoiceSchema = `{
  "type": "object",
  "definitions": {
    "num": { "type": ["number", "string", "null"] },
    "str": { "type": ["string", "number", "null"] }
  },
  "properties": {
    "fornecedor": {
      "type": ["object", "null"],
      "properties": {
        "razaoSocial": { "$ref": "#/definitions/str" },
        "fantasia": { "$ref": "#/definitions/str" },
        "cnpj": { "$ref": "#/definitions/str" },
        "endereco": { "$ref": "#/definitions/str" }
      }
    },
    "cliente": {
      "type": ["object", "null"],
      "properties": {
        "nome": { "$ref": "#/definitions/str" },
        "cpf": { "$ref": "#/definitions/str" },
        "cnpj": { "$ref": "#/definitions/str" },
        "endereco": { "$ref": "#/definitions/str" }
      }
    },
    "numeroNotaFiscal": { "$ref": "#/definitions/str" },
    "dataEmissao": { "$ref": "#/definitions/str" },
    "valorFrete": { "$ref": "#/definitions/num" },
    "produtos": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "descricao": { "$ref": "#/definitions/str" },
          "quantidade": { "$ref": "#/definitions/num" },
          "valorUnitario": { "$ref": "#/definitions/num" },
          "valorTotal": { "$ref": "#/definitions/num" }
        }
      }
    },
    "quantidadeParcelas": { "$ref": "#/definitions/num" },
    "parcelas": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "numero": { "$ref": "#/definitions/num" },
          "dataVencimento": { "$ref": "#/definitions/str" },
          "valor": { "$ref": "#/definitions/num" }
        }
      }
    },
    "valorTotal": { "$ref": "#/definitions/num" },
    "classificacaoDespesa": {
      "type": ["array", "string", "null"],
      "items": { "type": "string" }
    },
    "naturezaOperacao": { "$ref": "#/definitions/str" }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// invoiceJSONSchema compila el esquema una sola vez por proceso.
func invoiceJSONSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("invoice.json", strings.NewReader(invoiceSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("invoice.json")
	})
	return compiledSchema, schemaErr
}
