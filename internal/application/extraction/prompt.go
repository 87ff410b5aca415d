package extraction

import (
	"fmt"
	"strings"
)

// outputSchema formato JSON que el modelo debe devolver.
const outputSchema = `{
  "fornecedor": { "razaoSocial": "string", "fantasia": "string", "cnpj": "string", "tipo": "PJ", "endereco": "string" },
  "cliente": { "nome": "string", "cpf": "string", "cnpj": "string", "tipo": "PF ou PJ", "endereco": "string" },
  "numeroNotaFiscal": "string",
  "dataEmissao": "DD/MM/AAAA",
  "valorFrete": number,
  "produtos": [ { "descricao": "string", "quantidade": number, "valorUnitario": number, "valorTotal": number } ],
  "quantidadeParcelas": number,
  "parcelas": [ { "numero": number, "dataVencimento": "DD/MM/AAAA", "valor": number } ],
  "valorTotal": number,
  "classificacaoDespesa": ["string"],
  "naturezaOperacao": "string",
  "tipoConta": "APAGAR ou ARECEBER"
}`

const directionRules = `TIPO DE CONTA (tipoConta):
- "APAGAR": o destinatário está comprando ou pagando por produtos/serviços.
- "ARECEBER": o emitente está vendendo ou recebendo por produtos/serviços.
Ordem de decisão:
1. Destinatário pessoa física (CPF) -> "APAGAR".
2. Natureza com "compra", "aquisição", "serviço", "despesa", "receb.de terceiros" -> "APAGAR".
3. Natureza com "venda", "prestação", "receita", "faturamento", "comercialização", "revenda" -> "ARECEBER".
4. Sem decisão -> "APAGAR".`

const generalRules = `REGRAS GERAIS:
1. Responda APENAS com o objeto JSON, sem texto adicional nem blocos de código.
2. cliente.tipo: "PF" quando houver CPF, "PJ" quando houver CNPJ.
3. fornecedor.tipo é sempre "PJ".
4. Extraia TODOS os produtos da tabela.
5. Frete não encontrado: 0. Texto não encontrado: "N/A".
6. Valores com vírgula decimal (1.234,56) devem sair como número (1234.56).
7. Sempre extraia a "naturezaOperacao" (campo NATUREZA DA OPERAÇÃO).
8. Cada duplicata da seção FATURA/DUPLICATAS vira uma parcela, numerada a partir de 1.
9. classificacaoDespesa usa somente os códigos da lista de categorias.`

// PromptBuilder arma el prompt few-shot a partir del catálogo.
type PromptBuilder struct {
	catalog *Catalog
}

// NewPromptBuilder construye el builder.
func NewPromptBuilder(catalog *Catalog) *PromptBuilder {
	return &PromptBuilder{catalog: catalog}
}

// Build devuelve el prompt completo para el texto de la nota.
func (b *PromptBuilder) Build(invoiceText string) string {
	var sb strings.Builder

	sb.WriteString("EXEMPLOS DE NOTAS FISCAIS E SUAS SAÍDAS JSON:\n\n")
	for i, ex := range b.catalog.Examples {
		fmt.Fprintf(&sb, "--- EXEMPLO %d (%s) ---\nTEXTO DA NOTA:\n%s\nSAÍDA JSON ESPERADA:\n%s\n",
			i+1, ex.Title, strings.TrimSpace(ex.Text), strings.TrimSpace(ex.Output))
	}

	sb.WriteString("\nINSTRUÇÕES:\nExtraia os dados da nota fiscal abaixo no formato JSON indicado, seguindo os exemplos.\n\n")
	sb.WriteString("TEXTO DA NOTA FISCAL PARA ANÁLISE:\n")
	sb.WriteString(invoiceText)
	sb.WriteString("\n\nFORMATO JSON REQUERIDO:\n")
	sb.WriteString(outputSchema)

	sb.WriteString("\n\nCATEGORIAS DE DESPESA:\n")
	for _, c := range b.catalog.Categories {
		fmt.Fprintf(&sb, "- %q (%s)\n", c.Code, c.Description)
	}

	sb.WriteString("\n")
	sb.WriteString(directionRules)
	sb.WriteString("\n\n")
	sb.WriteString(generalRules)
	sb.WriteString("\n")
	return sb.String()
}
