// Package pipeline encadena extracción, conciliación y materialización de una nota fiscal.
package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/reconciliation"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/trace"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// State etapa alcanzada por una ejecución. El avance es lineal; FAILED es terminal.
type State string

const (
	StateStart                   State = "START"
	StateSupplierResolved        State = "SUPPLIER_RESOLVED"
	StateBilledPartyResolved     State = "BILLED_PARTY_RESOLVED"
	StateClassificationsResolved State = "CLASSIFICATIONS_RESOLVED"
	StateMovementCreated         State = "MOVEMENT_CREATED"
	StateClassificationsLinked   State = "CLASSIFICATIONS_LINKED"
	StateInstallmentsCreated     State = "INSTALLMENTS_CREATED"
	StateDone                    State = "DONE"
	StateFailed                  State = "FAILED"
)

const (
	unknownSupplier = "FORNECEDOR NÃO IDENTIFICADO"
	unknownBilled   = "FATURADO NÃO IDENTIFICADO"
	notePrefix      = "Processado automaticamente - "
)

// InvoiceExtractor produce el registro tipado de la nota.
type InvoiceExtractor interface {
	Extract(ctx context.Context, text, apiKey string, sink trace.Sink) (*entity.ExtractedInvoice, error)
}

// PersonReconciler busca o crea personas.
type PersonReconciler interface {
	Reconcile(ctx context.Context, in reconciliation.PersonInput) (*reconciliation.PersonResult, error)
}

// ClassificationReconciler busca o crea categorías.
type ClassificationReconciler interface {
	Reconcile(ctx context.Context, kind entity.ClassificationKind, label string) (*reconciliation.ClassificationResult, error)
}

// LedgerWriter escribe movimiento, vínculos y parcelas en una transacción.
type LedgerWriter interface {
	Materialize(ctx context.Context, req ledger.Request) (*ledger.Outcome, error)
}

// PartyOutcome persona resuelta en la ejecución.
type PartyOutcome struct {
	ID          int64             `json:"id"`
	Role        entity.PersonRole `json:"role"`
	Name        string            `json:"name"`
	TaxID       string            `json:"taxId,omitempty"`
	WasCreated  bool              `json:"wasCreated"`
	RoleChanged bool              `json:"roleChanged"`
}

// ClassificationOutcome categoría resuelta en la ejecución.
type ClassificationOutcome struct {
	ID         int64  `json:"id"`
	Label      string `json:"label"`
	WasCreated bool   `json:"wasCreated"`
}

// Result resultado de una ejecución, exitosa o no. Trace siempre trae lo acumulado.
type Result struct {
	RunID             string                   `json:"runId"`
	Success           bool                     `json:"success"`
	State             State                    `json:"state"`
	MovementID        *int64                   `json:"movementId"`
	SupplierID        *int64                   `json:"supplierId"`
	BilledPartyID     *int64                   `json:"billedPartyId"`
	ClassificationIDs []int64                  `json:"classificationIds"`
	InstallmentIDs    []int64                  `json:"installmentIds"`
	Supplier          *PartyOutcome            `json:"supplier,omitempty"`
	BilledParty       *PartyOutcome            `json:"billedParty,omitempty"`
	Classifications   []ClassificationOutcome  `json:"classifications"`
	Trace             []entity.TraceEntry      `json:"trace"`
	ExtractedInvoice  *entity.ExtractedInvoice `json:"extractedInvoice,omitempty"`
	Error             string                   `json:"error,omitempty"`

	// Err error original para errors.As en el llamador.
	Err error `json:"-"`
}

// Orchestrator ejecuta el pipeline de una nota.
type Orchestrator struct {
	extractor       InvoiceExtractor
	persons         PersonReconciler
	classifications ClassificationReconciler
	ledger          LedgerWriter
	log             *logger.Logger
}

// NewOrchestrator crea el orquestador con sus colaboradores.
func NewOrchestrator(extractor InvoiceExtractor, persons PersonReconciler, classifications ClassificationReconciler, writer LedgerWriter, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{
		extractor:       extractor,
		persons:         persons,
		classifications: classifications,
		ledger:          writer,
		log:             log.Component("pipeline"),
	}
}

// run estado de una ejecución en curso.
type run struct {
	res   *Result
	trace *trace.Log
	log   *logger.Logger
}

func (r *run) advance(s State) { r.res.State = s }

func (r *run) fail(err error) *Result {
	r.trace.Add("Erro: %v", err)
	r.log.Error().Err(err).Str("state", string(r.res.State)).Msg("procesamiento fallido")
	r.res.State = StateFailed
	r.res.Success = false
	r.res.Error = err.Error()
	r.res.Err = err
	r.res.Trace = r.trace.Entries()
	return r.res
}

// Process ejecuta el pipeline completo. Nunca devuelve nil: los fallos vuelven como Result con Success=false.
// Las personas y categorías creadas antes de un fallo no se revierten.
func (o *Orchestrator) Process(ctx context.Context, text, fileName, apiKey string) *Result {
	runID := uuid.NewString()
	runLog := logger.Wrap(o.log.With().Str("run_id", runID).Str("file", fileName).Logger())
	r := &run{
		res:   &Result{RunID: runID, State: StateStart, ClassificationIDs: []int64{}, InstallmentIDs: []int64{}, Classifications: []ClassificationOutcome{}},
		trace: trace.New(runLog),
		log:   runLog,
	}
	r.trace.Add("Iniciando processamento do arquivo %s", fileName)

	inv, err := o.extractor.Extract(ctx, text, apiKey, r.trace)
	if err != nil {
		return r.fail(err)
	}
	r.res.ExtractedInvoice = inv

	supplier, err := o.resolveSupplier(ctx, r, inv)
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateSupplierResolved)

	billed, err := o.resolveBilledParty(ctx, r, inv)
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateBilledPartyResolved)

	if err := o.resolveClassifications(ctx, r, inv); err != nil {
		return r.fail(err)
	}
	r.advance(StateClassificationsResolved)

	counterparty := supplier
	if inv.Direction == entity.DirectionReceivable && billed != nil {
		counterparty = billed
	}
	r.trace.Add("Contraparte do movimento: %s (ID %d)", counterparty.Name, counterparty.ID)

	out, err := o.ledger.Materialize(ctx, o.buildRequest(inv, supplier, counterparty, r.res.ClassificationIDs))
	if err != nil {
		return r.fail(err)
	}
	o.recordOutcome(r, inv, out)

	r.advance(StateDone)
	r.res.Success = true
	r.trace.Add("Processamento concluído com sucesso")
	r.res.Trace = r.trace.Entries()
	r.log.Info().Int64("movement_id", out.MovementID).Msg("nota procesada")
	return r.res
}

func (o *Orchestrator) resolveSupplier(ctx context.Context, r *run, inv *entity.ExtractedInvoice) (*PartyOutcome, error) {
	name := strings.TrimSpace(inv.Supplier.LegalName)
	placeholder := !present(name)
	if placeholder {
		name = unknownSupplier
		r.trace.Add("Razão social do fornecedor ausente, usando %q", name)
	}
	res, err := o.persons.Reconcile(ctx, reconciliation.PersonInput{
		Role:        entity.PersonRoleSupplier,
		LegalName:   name,
		TradeName:   inv.Supplier.TradeName,
		TaxID:       inv.Supplier.CNPJ,
		Placeholder: placeholder,
	})
	if err != nil {
		return nil, err
	}
	party := partyOutcome(res)
	r.res.Supplier = party
	r.res.SupplierID = &party.ID
	traceParty(r, "Fornecedor", res)
	return party, nil
}

func (o *Orchestrator) resolveBilledParty(ctx context.Context, r *run, inv *entity.ExtractedInvoice) (*PartyOutcome, error) {
	name := strings.TrimSpace(inv.BilledParty.Name)
	doc := inv.BilledParty.TaxID()
	if !present(name) && !present(doc) {
		r.trace.Add("Destinatário não identificado na nota, etapa ignorada")
		return nil, nil
	}
	placeholder := !present(name)
	if placeholder {
		name = unknownBilled
	}
	res, err := o.persons.Reconcile(ctx, reconciliation.PersonInput{
		Role:        entity.PersonRoleBilled,
		LegalName:   name,
		TaxID:       doc,
		Placeholder: placeholder,
	})
	if err != nil {
		return nil, err
	}
	party := partyOutcome(res)
	r.res.BilledParty = party
	r.res.BilledPartyID = &party.ID
	traceParty(r, "Faturado ("+string(inv.BilledParty.Kind)+")", res)
	return party, nil
}

func (o *Orchestrator) resolveClassifications(ctx context.Context, r *run, inv *entity.ExtractedInvoice) error {
	labels := inv.Categories
	if len(labels) == 0 {
		labels = []string{entity.UnclassifiedLabel}
		r.trace.Add("Nenhuma classificação válida extraída, usando %s", entity.UnclassifiedLabel)
	}
	for _, label := range labels {
		res, err := o.classifications.Reconcile(ctx, entity.ClassificationExpense, label)
		if err != nil {
			return err
		}
		if res.WasCreated {
			r.trace.Add("Classificação %s criada (ID %d)", res.Label, res.ID)
		} else {
			r.trace.Add("Classificação %s encontrada (ID %d)", res.Label, res.ID)
		}
		r.res.ClassificationIDs = append(r.res.ClassificationIDs, res.ID)
		r.res.Classifications = append(r.res.Classifications, ClassificationOutcome{ID: res.ID, Label: res.Label, WasCreated: res.WasCreated})
	}
	return nil
}

func (o *Orchestrator) buildRequest(inv *entity.ExtractedInvoice, supplier, counterparty *PartyOutcome, classIDs []int64) ledger.Request {
	req := ledger.Request{
		Movement: ledger.MovementInput{
			Direction:      inv.Direction,
			PersonID:       counterparty.ID,
			DocumentNumber: strings.TrimSpace(inv.InvoiceNumber),
			IssueDate:      inv.IssueDate,
			TotalValue:     money(inv.TotalOrZero()),
			Note:           notePrefix + supplier.Name,
		},
		ClassificationIDs: classIDs,
	}
	for _, p := range inv.Installments {
		in := ledger.InstallmentInput{Number: p.Number, DueDate: p.DueDate}
		if p.Value != nil {
			v := money(*p.Value)
			in.Value = &v
		}
		req.Installments = append(req.Installments, in)
	}
	return req
}

func (o *Orchestrator) recordOutcome(r *run, inv *entity.ExtractedInvoice, out *ledger.Outcome) {
	r.res.MovementID = &out.MovementID
	r.advance(StateMovementCreated)
	r.trace.Add("Movimento %s criado (ID %d, valor %s)", inv.Direction, out.MovementID, money(inv.TotalOrZero()).StringFixed(2))
	if out.DocumentColumn == "" {
		r.trace.Add("Aviso: esquema sem coluna de número de documento, número omitido")
	}
	for _, w := range out.Warnings {
		r.trace.Add("Aviso: %s", w)
	}

	for _, l := range out.Linked {
		if l.Created {
			r.trace.Add("Classificação %d vinculada ao movimento", l.ClassificationID)
		} else {
			r.trace.Add("Classificação %d já vinculada ao movimento", l.ClassificationID)
		}
	}
	r.advance(StateClassificationsLinked)

	for _, inst := range out.Installments {
		r.trace.Add("Parcela %d criada (ID %d, vencimento %s, valor %s)",
			inst.Number, inst.ID, inst.DueDate.Format("2006-01-02"), inst.Value.StringFixed(2))
	}
	r.res.InstallmentIDs = out.InstallmentIDs()
	r.advance(StateInstallmentsCreated)
}

func partyOutcome(res *reconciliation.PersonResult) *PartyOutcome {
	return &PartyOutcome{
		ID:          res.ID,
		Role:        res.Role,
		Name:        res.LegalName,
		TaxID:       res.TaxID,
		WasCreated:  res.WasCreated,
		RoleChanged: res.RoleChanged,
	}
}

func traceParty(r *run, label string, res *reconciliation.PersonResult) {
	switch {
	case res.WasCreated && res.AmbiguousCandidates > 1:
		r.trace.Add("%s %s criado (ID %d); %d cadastros com o mesmo nome, nenhum reutilizado", label, res.LegalName, res.ID, res.AmbiguousCandidates)
	case res.WasCreated:
		r.trace.Add("%s %s criado (ID %d)", label, res.LegalName, res.ID)
	case res.RoleChanged:
		r.trace.Add("%s %s encontrado (ID %d), tipo alterado de %s para %s", label, res.LegalName, res.ID, res.PreviousRole, res.Role)
	default:
		r.trace.Add("%s %s encontrado (ID %d)", label, res.LegalName, res.ID)
	}
	if res.TaxIDAttached {
		r.trace.Add("Documento %s registrado no cadastro %d", res.TaxID, res.ID)
	}
}

func present(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, "N/A")
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
