// Package trace implementa el log de progreso legible que acompaña cada procesamiento de nota.
package trace

import (
	"fmt"
	"sync"
	"time"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/logger"
)

// Sink recibe mensajes de decisión en orden.
type Sink interface {
	Add(format string, args ...any)
}

// Log acumula mensajes con IDs secuenciales 1-based. Seguro para uso concurrente.
type Log struct {
	mu      sync.Mutex
	entries []entity.TraceEntry
	now     func() time.Time
	log     *logger.Logger
}

// New crea un log vacío. Si log no es nil, cada mensaje también se escribe en debug.
func New(log *logger.Logger) *Log {
	return &Log{now: time.Now, log: log}
}

// Add agrega un mensaje formateado con el siguiente ID.
func (l *Log) Add(format string, args ...any) {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	id := len(l.entries) + 1
	l.entries = append(l.entries, entity.TraceEntry{ID: id, Text: text, Timestamp: l.now()})
	l.mu.Unlock()

	if l.log != nil {
		l.log.Debug().Int("trace_id", id).Msg(text)
	}
}

// Entries devuelve una copia de los mensajes acumulados.
func (l *Log) Entries() []entity.TraceEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.TraceEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len cantidad de mensajes.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Discard descarta los mensajes.
var Discard Sink = discard{}

type discard struct{}

func (discard) Add(string, ...any) {}
