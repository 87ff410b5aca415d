package extraction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/trace"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/taxid"
)

// DefaultParams muestreo casi determinista con salida acotada.
var DefaultParams = ports.GenerationParams{
	Temperature:     0.1,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 8192,
}

// DefaultModelTimeout tiempo máximo de una llamada al modelo antes de pasar al respaldo.
const DefaultModelTimeout = 60 * time.Second

// Service extrae los campos de una nota fiscal a partir de su texto.
type Service struct {
	completer ports.TextCompleter
	prompts   *PromptBuilder
	policy    DirectionPolicy
	params    ports.GenerationParams
	timeout   time.Duration
	log       *logger.Logger
}

// NewService crea el servicio. completer puede ser nil: en ese caso siempre se usa el extractor de respaldo.
func NewService(completer ports.TextCompleter, catalog *Catalog, policy DirectionPolicy, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		completer: completer,
		prompts:   NewPromptBuilder(catalog),
		policy:    policy,
		params:    DefaultParams,
		timeout:   DefaultModelTimeout,
		log:       log.Component("extraction"),
	}
}

// WithModelTimeout cambia el límite de la llamada al modelo; valores no positivos se ignoran.
func (s *Service) WithModelTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Extract devuelve el registro normalizado de la nota.
//
// Sin credencial, o si la llamada al modelo falla o supera el límite de tiempo, usa el extractor por
// expresiones regulares. Devuelve *domain.ExtractionError si el respaldo tampoco aplica (texto vacío)
// o si el contexto del llamador fue cancelado, y *domain.MalformedModelOutputError si el modelo
// respondió sin JSON utilizable.
func (s *Service) Extract(ctx context.Context, text, apiKey string, sink trace.Sink) (*entity.ExtractedInvoice, error) {
	if sink == nil {
		sink = trace.Discard
	}

	if strings.TrimSpace(apiKey) == "" || s.completer == nil {
		sink.Add("Nenhuma chave de API informada, usando extrator por expressões regulares")
		return s.fallback(text, nil, sink)
	}

	sink.Add("Enviando texto da nota ao modelo de linguagem")
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	raw, err := s.completer.Complete(callCtx, apiKey, s.prompts.Build(text), s.params)
	timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded)
	cancel()
	if err != nil {
		if ctx.Err() != nil {
			return nil, &domain.ExtractionError{Err: err}
		}
		switch {
		case timedOut:
			s.log.Warn().Err(err).Dur("timeout", s.timeout).Msg("el modelo no respondió a tiempo, usando extractor de respaldo")
			sink.Add("Modelo sem resposta em %s, usando extrator por expressões regulares", s.timeout)
		case IsRateLimit(err):
			s.log.Warn().Err(err).Msg("cuota del modelo agotada, usando extractor de respaldo")
			sink.Add("Limite de uso do modelo atingido, usando extrator por expressões regulares")
		default:
			s.log.Warn().Err(err).Msg("fallo en la llamada al modelo, usando extractor de respaldo")
			sink.Add("Falha na chamada ao modelo (%v), usando extrator por expressões regulares", err)
		}
		return s.fallback(text, err, sink)
	}

	parsed, err := parseModelOutput(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("raw", raw).Msg("respuesta del modelo no utilizable")
		sink.Add("Resposta do modelo sem JSON válido")
		return nil, err
	}
	sink.Add("Resposta do modelo interpretada")

	inv := normalize(parsed)
	s.finish(inv, sink)
	return inv, nil
}

func (s *Service) fallback(text string, cause error, sink trace.Sink) (*entity.ExtractedInvoice, error) {
	inv, err := extractFallback(text)
	if err != nil {
		sink.Add("Extrator por expressões regulares não aplicável: %v", err)
		if cause != nil {
			err = errors.Join(cause, err)
		}
		return nil, &domain.ExtractionError{Err: err}
	}
	s.finish(inv, sink)
	return inv, nil
}

// finish decide la dirección, valida montos y registra el resumen en la traza.
func (s *Service) finish(inv *entity.ExtractedInvoice, sink trace.Sink) {
	dir, reason := s.policy.Determine(inv)
	inv.Direction = dir
	sink.Add("Tipo de conta: %s (%s)", dir, reason)

	checkAmounts(inv, s.log, sink)

	for _, doc := range []string{inv.Supplier.CNPJ, inv.BilledParty.TaxID()} {
		if !present(doc) || taxid.Detect(doc) == taxid.KindUnknown {
			continue
		}
		if err := taxid.ValidateCheckDigits(doc); err != nil {
			s.log.Warn().Str("tax_id", doc).Err(err).Msg("dígitos verificadores inválidos")
			sink.Add("Aviso: documento %s com dígitos verificadores inválidos", doc)
		}
	}

	sink.Add("Dados extraídos (%s): fornecedor %q, destinatário %q (%s), nota %q, total %.2f",
		inv.Source, inv.Supplier.LegalName, inv.BilledParty.Name, inv.BilledParty.Kind,
		inv.InvoiceNumber, inv.TotalOrZero())
}

// IsRateLimit reconoce errores de cuota o límite de tasa, tipados o por su mensaje.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "quota", "resource_exhausted", "rate limit", "too many requests"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
