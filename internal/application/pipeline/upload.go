package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// HistoryRecorder guarda el resultado de cada procesamiento.
type HistoryRecorder interface {
	Record(ctx context.Context, rec *entity.ProcessingRecord) error
}

// Processor ejecuta el pipeline sobre texto ya extraído.
type Processor interface {
	Process(ctx context.Context, text, fileName, apiKey string) *Result
}

// UploadUseCase recibe el PDF, extrae su texto, ejecuta el pipeline y registra el historial.
type UploadUseCase struct {
	text       ports.TextExtractor
	processor  Processor
	history    HistoryRecorder
	defaultKey string
	now        func() time.Time
	log        *logger.Logger
}

// NewUploadUseCase crea el caso de uso. defaultKey es la credencial del servidor cuando el
// cliente no envía una; history puede ser nil.
func NewUploadUseCase(text ports.TextExtractor, processor Processor, history HistoryRecorder, defaultKey string, log *logger.Logger) *UploadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadUseCase{
		text:       text,
		processor:  processor,
		history:    history,
		defaultKey: defaultKey,
		now:        time.Now,
		log:        log.Component("upload"),
	}
}

// Process procesa un PDF. El resultado siempre se devuelve; el historial se registra
// tanto para éxitos como para fallos y un error al registrarlo solo se loguea.
func (uc *UploadUseCase) Process(ctx context.Context, fileName string, pdf []byte, apiKey string) *Result {
	if strings.TrimSpace(apiKey) == "" {
		apiKey = uc.defaultKey
	}

	var res *Result
	text, err := uc.text.ExtractText(ctx, pdf)
	if err != nil {
		res = failedBeforeStart(fileName, fmt.Errorf("%w: não foi possível ler o PDF: %v", domain.ErrInvalidInput, err))
	} else {
		if strings.TrimSpace(text) == "" {
			uc.log.Warn().Str("file", fileName).Msg("PDF sin texto extraíble")
		}
		res = uc.processor.Process(ctx, text, fileName, apiKey)
	}

	if uc.history != nil {
		if err := uc.history.Record(ctx, uc.toRecord(fileName, res)); err != nil {
			uc.log.Warn().Err(err).Str("run_id", res.RunID).Msg("no se pudo registrar el historial")
		}
	}
	return res
}

func (uc *UploadUseCase) toRecord(fileName string, res *Result) *entity.ProcessingRecord {
	id := res.RunID
	if id == "" {
		id = uuid.NewString()
	}
	return &entity.ProcessingRecord{
		ID:                id,
		FileName:          fileName,
		ProcessedAt:       uc.now().UTC(),
		Success:           res.Success,
		MovementID:        res.MovementID,
		SupplierID:        res.SupplierID,
		BilledPartyID:     res.BilledPartyID,
		ClassificationIDs: res.ClassificationIDs,
		InstallmentIDs:    res.InstallmentIDs,
		Trace:             res.Trace,
		ExtractedInvoice:  res.ExtractedInvoice,
		Error:             res.Error,
	}
}

func failedBeforeStart(fileName string, err error) *Result {
	now := time.Now()
	return &Result{
		RunID:             uuid.NewString(),
		State:             StateFailed,
		ClassificationIDs: []int64{},
		InstallmentIDs:    []int64{},
		Classifications:   []ClassificationOutcome{},
		Trace: []entity.TraceEntry{
			{ID: 1, Text: "Iniciando processamento do arquivo " + fileName, Timestamp: now},
			{ID: 2, Text: "Erro: " + err.Error(), Timestamp: now},
		},
		Error: err.Error(),
		Err:   err,
	}
}

// IsInputError indica si el fallo se debe a la entrada del cliente (PDF ilegible).
func IsInputError(res *Result) bool {
	return res != nil && errors.Is(res.Err, domain.ErrInvalidInput)
}
