package extraction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/extraction"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/trace"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompleter struct {
	out    string
	err    error
	calls  int
	params ports.GenerationParams
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, _, prompt string, params ports.GenerationParams) (string, error) {
	f.calls++
	f.prompt = prompt
	f.params = params
	return f.out, f.err
}

func newService(t *testing.T, c ports.TextCompleter) *extraction.Service {
	t.Helper()
	catalog, err := extraction.LoadCatalog()
	require.NoError(t, err, "el catálogo embebido debe ser válido")
	return extraction.NewService(c, catalog, extraction.DefaultDirectionPolicy(), nil)
}

const modelHappyPath = "Segue o resultado:\n```json\n" + `{
  "fornecedor": {"razaoSocial": "CTVA PROTECAO DE CULTIVOS LTDA", "fantasia": "CTVA", "cnpj": "47.180.625/0058-81", "endereco": "Rod. BR 232"},
  "cliente": {"nome": "BEITRANO DA SILVA", "cpf": "111.111.111-11", "cnpj": "99.999.999/0001-99", "endereco": "Fazenda Boa Vista"},
  "numeroNotaFiscal": "000123456",
  "dataEmissao": "05/03/2025",
  "valorFrete": null,
  "produtos": [{"descricao": "HERBICIDA", "quantidade": 1120, "valorUnitario": "180,25", "valorTotal": "201.880,00"}],
  "quantidadeParcelas": 1,
  "parcelas": [],
  "valorTotal": "163520.00",
  "classificacaoDespesa": ["INSUMOS_AGRICOLAS", "CATEGORIA_INVENTADA", "INSUMOS_AGRICOLAS"],
  "naturezaOperacao": "Venda merc.aág.receb.de terceiros"
}` + "\n```\nQualquer dúvida, estou à disposição."

// ──────────────────────────────────────────────────────────────────────────────
// Normalización numérica
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeNumber(t *testing.T) {
	cases := map[string]float64{
		"1.234,56":    1234.56,
		"1234,56":     1234.56,
		"1234.56":     1234.56,
		" 163520.00":  163520.00,
		"1.000.000,1": 1000000.1,
	}
	for in, want := range cases {
		got := extraction.NormalizeNumber(in)
		require.NotNil(t, got, "entrada %q", in)
		assert.InDelta(t, want, *got, 1e-9, "entrada %q", in)
	}

	for _, in := range []string{"", "abc", "N/A", "NaN", "12a"} {
		assert.Nil(t, extraction.NormalizeNumber(in), "entrada %q debe ser nula", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dirección de la cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestDirectionPolicy_Prioridad(t *testing.T) {
	policy := extraction.DefaultDirectionPolicy()
	pj := entity.InvoiceSupplier{Kind: entity.PartyOrganization}

	// PF siempre a pagar, aunque la naturaleza diga "venda".
	inv := &entity.ExtractedInvoice{Supplier: pj, OperationNature: "Venda",
		BilledParty: entity.InvoiceBilledParty{Kind: entity.PartyIndividual}}
	dir, _ := policy.Determine(inv)
	assert.Equal(t, entity.DirectionPayable, dir)

	// Venda entre PJ => a recibir.
	inv = &entity.ExtractedInvoice{Supplier: pj, OperationNature: "Venda de produção do estabelecimento",
		BilledParty: entity.InvoiceBilledParty{Kind: entity.PartyOrganization}}
	dir, _ = policy.Determine(inv)
	assert.Equal(t, entity.DirectionReceivable, dir)

	// Los términos de pago se revisan primero.
	inv.OperationNature = "VENDA MERC.AÁG.RECEB.DE TERCEIROS"
	dir, _ = policy.Determine(inv)
	assert.Equal(t, entity.DirectionPayable, dir)

	// PJ-PJ sin indicio usa la política configurada.
	inv.OperationNature = "Remessa para conserto"
	dir, _ = extraction.DirectionPolicy{OrganizationsDefault: entity.DirectionReceivable}.Determine(inv)
	assert.Equal(t, entity.DirectionReceivable, dir)
	dir, _ = policy.Determine(inv)
	assert.Equal(t, entity.DirectionPayable, dir)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extracción con modelo
// ──────────────────────────────────────────────────────────────────────────────

func TestExtract_ModeloNormalizaRespuesta(t *testing.T) {
	c := &fakeCompleter{out: modelHappyPath}
	svc := newService(t, c)
	log := trace.New(nil)

	inv, err := svc.Extract(context.Background(), "texto da nota", "key", log)
	require.NoError(t, err)
	require.Equal(t, 1, c.calls)

	assert.Equal(t, extraction.DefaultParams, c.params)
	assert.Contains(t, c.prompt, "texto da nota")
	assert.Contains(t, c.prompt, "INSUMOS_AGRICOLAS")

	assert.Equal(t, entity.SourceModel, inv.Source)
	assert.Equal(t, entity.PartyOrganization, inv.Supplier.Kind)
	assert.Equal(t, entity.PartyIndividual, inv.BilledParty.Kind)
	assert.Empty(t, inv.BilledParty.CNPJ, "con CPF el CNPJ se descarta")
	assert.Equal(t, "111.111.111-11", inv.BilledParty.TaxID())
	assert.Equal(t, 0.0, inv.Freight)
	require.NotNil(t, inv.Total)
	assert.InDelta(t, 163520.00, *inv.Total, 1e-9)
	require.Len(t, inv.Items, 1)
	assert.InDelta(t, 180.25, *inv.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, []string{"INSUMOS_AGRICOLAS"}, inv.Categories)
	assert.Equal(t, entity.DirectionPayable, inv.Direction)
	assert.Greater(t, log.Len(), 2)
}

func TestExtract_NaturezaVaciaPorDefecto(t *testing.T) {
	c := &fakeCompleter{out: `{"fornecedor": {"razaoSocial": "ACME", "cnpj": "11.222.333/0001-81"}, "cliente": {"nome": "X", "cnpj": "11.444.777/0001-61"}, "valorTotal": 10,}`}
	inv, err := newService(t, c).Extract(context.Background(), "nota", "key", nil)
	require.NoError(t, err, "la coma final se repara")

	assert.Equal(t, "N/A", inv.OperationNature)
	assert.Equal(t, entity.PartyOrganization, inv.BilledParty.Kind)
	assert.Equal(t, entity.DirectionPayable, inv.Direction, "PJ-PJ sin indicio => a pagar")
}

func TestExtract_RespuestaSinJSON(t *testing.T) {
	c := &fakeCompleter{out: "Não consegui ler a nota."}
	_, err := newService(t, c).Extract(context.Background(), "nota", "key", nil)

	var malformed *domain.MalformedModelOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Não consegui ler a nota.", malformed.Raw)
}

func TestExtract_ProdutosConFormaInvalida(t *testing.T) {
	c := &fakeCompleter{out: `{"produtos": {"descricao": "x"}}`}
	_, err := newService(t, c).Extract(context.Background(), "nota", "key", nil)

	var malformed *domain.MalformedModelOutputError
	assert.ErrorAs(t, err, &malformed)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extractor de respaldo
// ──────────────────────────────────────────────────────────────────────────────

const danfeText = `DANFE
RAZÃO SOCIAL: CTVA PROTECAO DE CULTIVOS LTDA
CNPJ 47.180.625/0058-81
NF-e Nº 000.123.456
DATA DE EMISSÃO 05/03/2025
NATUREZA DA OPERAÇÃO
Venda merc.aág.receb.de terceiros
DESTINATÁRIO
NOME/RAZÃO SOCIAL: BEITRANO DA SILVA
CPF 111.111.111-11
VALOR TOTAL DA NOTA 163.520,00
`

func TestExtract_SinClaveUsaRespaldo(t *testing.T) {
	c := &fakeCompleter{}
	inv, err := newService(t, c).Extract(context.Background(), danfeText, "", nil)
	require.NoError(t, err)
	assert.Zero(t, c.calls, "sin credencial no se llama al modelo")

	assert.Equal(t, entity.SourceFallback, inv.Source)
	assert.Equal(t, "47.180.625/0058-81", inv.Supplier.CNPJ)
	assert.Equal(t, "CTVA PROTECAO DE CULTIVOS LTDA", inv.Supplier.LegalName)
	assert.Equal(t, "BEITRANO DA SILVA", inv.BilledParty.Name)
	assert.Equal(t, entity.PartyIndividual, inv.BilledParty.Kind)
	assert.Equal(t, "111.111.111-11", inv.BilledParty.CPF)
	assert.Equal(t, "000123456", inv.InvoiceNumber)
	assert.Equal(t, "05/03/2025", inv.IssueDate)
	assert.Equal(t, "Venda merc.aág.receb.de terceiros", inv.OperationNature)
	require.NotNil(t, inv.Total)
	assert.InDelta(t, 163520.00, *inv.Total, 1e-9)
	assert.Equal(t, entity.DirectionPayable, inv.Direction)
}

func TestExtract_CuotaAgotadaUsaRespaldo(t *testing.T) {
	c := &fakeCompleter{err: errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED quota exceeded")}
	log := trace.New(nil)
	inv, err := newService(t, c).Extract(context.Background(), danfeText, "key", log)
	require.NoError(t, err)
	assert.Equal(t, entity.SourceFallback, inv.Source)

	var texts []string
	for _, e := range log.Entries() {
		texts = append(texts, e.Text)
	}
	assert.Contains(t, texts, "Limite de uso do modelo atingido, usando extrator por expressões regulares")
}

func TestExtract_RespaldoNoAplicable(t *testing.T) {
	c := &fakeCompleter{err: &domain.RateLimitError{Err: errors.New("quota")}}
	_, err := newService(t, c).Extract(context.Background(), "   ", "key", nil)

	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.True(t, extraction.IsRateLimit(err), "la causa original se conserva")
}

func TestExtract_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &fakeCompleter{err: context.Canceled}
	_, err := newService(t, c).Extract(ctx, danfeText, "key", nil)

	var extErr *domain.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingCompleter no responde hasta que vence el contexto de la llamada.
type blockingCompleter struct{ deadline bool }

func (b *blockingCompleter) Complete(ctx context.Context, _, _ string, _ ports.GenerationParams) (string, error) {
	_, b.deadline = ctx.Deadline()
	<-ctx.Done()
	return "", ctx.Err()
}

func TestExtract_ModeloLentoUsaRespaldo(t *testing.T) {
	c := &blockingCompleter{}
	log := trace.New(nil)
	svc := newService(t, c).WithModelTimeout(20 * time.Millisecond)

	inv, err := svc.Extract(context.Background(), danfeText, "key", log)
	require.NoError(t, err)
	assert.True(t, c.deadline, "la llamada al modelo lleva un límite de tiempo")
	assert.Equal(t, entity.SourceFallback, inv.Source)
	assert.Equal(t, "47.180.625/0058-81", inv.Supplier.CNPJ)

	var texts []string
	for _, e := range log.Entries() {
		texts = append(texts, e.Text)
	}
	assert.Contains(t, texts, "Modelo sem resposta em 20ms, usando extrator por expressões regulares")
}

func TestLoadCatalog_TaxonomiaCoincide(t *testing.T) {
	catalog, err := extraction.LoadCatalog()
	require.NoError(t, err)
	codes := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, extraction.ValidCategories(), codes)
	assert.NotEmpty(t, catalog.Examples)
}
