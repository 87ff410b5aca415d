package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/history"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/pipeline"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/registry"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/memory"
	apphttp "github.com/Luiz2608/Software-Financeiro---Paraiba/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeUpload struct {
	res     *pipeline.Result
	gotKey  string
	gotName string
	calls   int
}

func (f *fakeUpload) Process(_ context.Context, fileName string, _ []byte, apiKey string) *pipeline.Result {
	f.calls++
	f.gotKey, f.gotName = apiKey, fileName
	return f.res
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	app    *fiber.App
	repos  *memory.Repositories
	mat    *ledger.Materializer
	upload *fakeUpload
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := memory.New()
	probe := ledger.NewSchemaProbe(repos.Inspector, nil)
	mat := ledger.NewMaterializer(repos.Tx, probe, nil)
	movementUC := ledger.NewMovementUseCase(ledger.MovementDeps{
		Tx: repos.Tx, Movements: repos.Movements, Installments: repos.Installments, Links: repos.Links,
		Persons: repos.Persons, Classifications: repos.Classifications, Probe: probe, Materializer: mat,
	}, nil)
	upload := &fakeUpload{res: &pipeline.Result{Success: true, RunID: "run-1", State: pipeline.StateDone}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName:      "contas-api",
		DB:               fakePinger{},
		Upload:           upload,
		UploadMaxMB:      1,
		PersonUC:         registry.NewPersonUseCase(repos.Persons),
		ClassificationUC: registry.NewClassificationUseCase(repos.Classifications, probe),
		MovementUC:       movementUC,
		History:          history.NewService(repos.History),
	})
	return &testEnv{app: app, repos: repos, mat: mat, upload: upload}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func uploadRequest(t *testing.T, fileName string, content []byte, apiKey string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("pdf", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/invoices/process", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	return req
}

var fakePDF = []byte("%PDF-1.4\nconteúdo")

// ──────────────────────────────────────────────────────────────────────────────
// Carga de notas
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_CaminoFeliz(t *testing.T) {
	env := newEnv(t)
	resp, err := env.app.Test(uploadRequest(t, "nota.pdf", fakePDF, "clave-cliente"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]any](t, resp)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "clave-cliente", env.upload.gotKey)
	assert.Equal(t, "nota.pdf", env.upload.gotName)
}

func TestUpload_SinArchivo(t *testing.T) {
	env := newEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/invoices/process", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.upload.calls)
}

func TestUpload_RechazaNoPDF(t *testing.T) {
	env := newEnv(t)

	resp, err := env.app.Test(uploadRequest(t, "nota.txt", fakePDF, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = env.app.Test(uploadRequest(t, "nota.pdf", []byte("no soy un pdf"), ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.upload.calls)
}

func TestUpload_ArchivoDemasiadoGrande(t *testing.T) {
	env := newEnv(t)
	big := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 2<<20)...)
	resp, err := env.app.Test(uploadRequest(t, "nota.pdf", big, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_FalloDevuelve422ConTraza(t *testing.T) {
	env := newEnv(t)
	env.upload.res = &pipeline.Result{
		RunID: "run-2", State: pipeline.StateFailed, Error: "falha na extração",
		Trace: []entity.TraceEntry{{ID: 1, Text: "Iniciando processamento do arquivo nota.pdf", Timestamp: time.Now()}},
		Err:   errors.New("falha na extração"),
	}
	resp, err := env.app.Test(uploadRequest(t, "nota.pdf", fakePDF, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	out := decode[dto.ProcessingErrorResponse](t, resp)
	assert.Equal(t, "PROCESSING_FAILED", out.Code)
	assert.Equal(t, "run-2", out.RunID)
	require.Len(t, out.Trace, 1)
}

func TestUpload_ErrorDeEntradaDevuelve400(t *testing.T) {
	env := newEnv(t)
	env.upload.res = &pipeline.Result{State: pipeline.StateFailed, Error: "pdf ilegível", Err: domain.ErrInvalidInput}
	resp, err := env.app.Test(uploadRequest(t, "nota.pdf", fakePDF, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Personas y categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestPersons_CrearDuplicarYConsultar(t *testing.T) {
	env := newEnv(t)
	body := dto.CreatePersonRequest{Role: "FORNECEDOR", LegalName: "AGRO LTDA", TaxID: "12345678000195"}

	resp := doJSON(t, env.app, http.MethodPost, "/api/persons", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.PersonResponse](t, resp)
	assert.Equal(t, "12.345.678/0001-95", created.TaxID)

	resp = doJSON(t, env.app, http.MethodPost, "/api/persons", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/persons/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/persons?limit=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.PersonResponse](t, resp)
	assert.Len(t, list, 1)
}

func TestPersons_ValidacionDevuelveCampos(t *testing.T) {
	env := newEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/persons", map[string]string{"tipo": "OUTRO"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "oneof", out.Fields["Role"])
	assert.Equal(t, "required", out.Fields["LegalName"])
}

func TestPersons_PaginacionInvalida(t *testing.T) {
	env := newEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/persons?limit=500", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClassifications_CrearYDesactivar(t *testing.T) {
	env := newEnv(t)
	resp := doJSON(t, env.app, http.MethodPost, "/api/classifications", dto.ClassificationRequest{Kind: "DESPESA", Label: "manutenção"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	c := decode[dto.ClassificationResponse](t, resp)
	assert.Equal(t, "MANUTENÇÃO", c.Label)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/classifications/"+itoa(c.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodPatch, "/api/classifications/"+itoa(c.ID)+"/activate", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y parcelas
// ──────────────────────────────────────────────────────────────────────────────

func seedMovement(t *testing.T, env *testEnv) int64 {
	t.Helper()
	ctx := context.Background()
	p := &entity.Person{Role: entity.PersonRoleSupplier, LegalName: "AGRO LTDA", TaxID: "12.345.678/0001-95"}
	require.NoError(t, env.repos.Persons.Create(ctx, p))
	cls := &entity.Classification{Kind: entity.ClassificationExpense, Label: "INSUMOS AGRÍCOLAS"}
	require.NoError(t, env.repos.Classifications.Create(ctx, cls, true))

	out, err := env.mat.Materialize(ctx, ledger.Request{
		Movement: ledger.MovementInput{
			Direction: entity.DirectionPayable, PersonID: p.ID, DocumentNumber: "000123",
			IssueDate: "10/03/2025", TotalValue: decimal.RequireFromString("300.00"),
			Note: "Processado automaticamente - AGRO LTDA",
		},
		ClassificationIDs: []int64{cls.ID},
	})
	require.NoError(t, err)
	return out.MovementID
}

func TestMovements_DetalleLiquidacionYBorrado(t *testing.T) {
	env := newEnv(t)
	id := seedMovement(t, env)

	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/"+itoa(id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[dto.MovementDetailResponse](t, resp)
	assert.Equal(t, "300.00", detail.TotalValue)
	assert.Equal(t, "2025-03-10", detail.IssueDate)
	require.NotNil(t, detail.Person)
	assert.Equal(t, "AGRO LTDA", detail.Person.LegalName)
	require.Len(t, detail.Installments, 1)
	require.Len(t, detail.Classifications, 1)

	instID := itoa(detail.Installments[0].ID)
	resp = doJSON(t, env.app, http.MethodPost, "/api/installments/"+instID+"/settle",
		dto.SettleInstallmentRequest{PaidDate: "15/03/2025", PaidValue: "300.00"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inst := decode[dto.InstallmentResponse](t, resp)
	assert.Equal(t, "PAGA", inst.Status)
	require.NotNil(t, inst.PaidAt)
	assert.Equal(t, "2025-03-15", *inst.PaidAt)

	resp = doJSON(t, env.app, http.MethodPost, "/api/installments/"+instID+"/settle", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/movements/"+itoa(id), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodGet, "/api/movements/"+itoa(id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovements_EditarYVincularCategoria(t *testing.T) {
	env := newEnv(t)
	id := seedMovement(t, env)

	note := "ajustado"
	resp := doJSON(t, env.app, http.MethodPut, "/api/movements/"+itoa(id), dto.UpdateMovementRequest{Note: &note})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ajustado", decode[dto.MovementResponse](t, resp).Note)

	cls := &entity.Classification{Kind: entity.ClassificationExpense, Label: "FRETE"}
	require.NoError(t, env.repos.Classifications.Create(context.Background(), cls, true))

	path := "/api/movements/" + itoa(id) + "/classifications/" + itoa(cls.ID)
	resp = doJSON(t, env.app, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, env.app, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.LinkClassificationResponse](t, resp).Created)
}

func TestMovements_IDInvalido(t *testing.T) {
	env := newEnv(t)
	resp := doJSON(t, env.app, http.MethodGet, "/api/movements/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial y health
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_ConsultarYBorrar(t *testing.T) {
	env := newEnv(t)
	require.NoError(t, env.repos.History.Save(context.Background(), &entity.ProcessingRecord{
		ID: "abc", FileName: "nota.pdf", ProcessedAt: time.Now(), Success: true,
	}))

	resp := doJSON(t, env.app, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]entity.ProcessingRecord](t, resp), 1)

	resp = doJSON(t, env.app, http.MethodGet, "/api/history/abc", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/history/abc", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodDelete, "/api/history/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/health", apphttp.Health("contas-api", fakePinger{}))
	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = fiber.New()
	app.Get("/health", apphttp.Health("contas-api", fakePinger{err: errors.New("sin conexión")}))
	resp = doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", decode[dto.HealthResponse](t, resp).Status)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
