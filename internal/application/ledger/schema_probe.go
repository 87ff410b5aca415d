package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// SchemaProbe detecta las columnas opcionales del esquema y guarda el resultado
// durante la vida del proceso. Un sondeo fallido no se guarda.
type SchemaProbe struct {
	inspector repository.SchemaInspector
	log       *logger.Logger

	mu   sync.Mutex
	caps *repository.SchemaCapabilities
}

// NewSchemaProbe crea el sondeo sobre el inspector dado.
func NewSchemaProbe(inspector repository.SchemaInspector, log *logger.Logger) *SchemaProbe {
	if log == nil {
		log = logger.Nop()
	}
	return &SchemaProbe{inspector: inspector, log: log.Component("ledger.schema")}
}

// Capabilities devuelve las columnas opcionales disponibles.
func (p *SchemaProbe) Capabilities(ctx context.Context) (repository.SchemaCapabilities, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.caps != nil {
		return *p.caps, nil
	}

	var caps repository.SchemaCapabilities
	for _, col := range []string{repository.DocumentColumnDocumento, repository.DocumentColumnNotaFiscal} {
		ok, err := p.inspector.ColumnExists(ctx, "movimentocontas", col)
		if err != nil {
			return caps, fmt.Errorf("sondear movimentocontas.%s: %w", col, err)
		}
		if ok {
			caps.DocumentColumn = col
			break
		}
	}
	var err error
	if caps.LinkHasValue, err = p.inspector.ColumnExists(ctx, "movimento_classificacao", "valor"); err != nil {
		return caps, fmt.Errorf("sondear movimento_classificacao.valor: %w", err)
	}
	if caps.ClassificationHasDisplayName, err = p.inspector.ColumnExists(ctx, "classificacao", "nome"); err != nil {
		return caps, fmt.Errorf("sondear classificacao.nome: %w", err)
	}

	p.log.Info().
		Str("document_column", caps.DocumentColumn).
		Bool("link_value", caps.LinkHasValue).
		Bool("classification_name", caps.ClassificationHasDisplayName).
		Msg("columnas opcionales detectadas")
	p.caps = &caps
	return caps, nil
}
