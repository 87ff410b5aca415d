package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ── Taxonomía de fallos del procesamiento de notas ────────────────────────────

// ExtractionError la llamada al modelo falló por una causa no transitoria
// y el extractor de respaldo no aplicaba.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return "extracción: " + e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }

// MalformedModelOutputError el modelo respondió pero no hay un objeto JSON utilizable.
// Raw conserva el texto original para diagnóstico.
type MalformedModelOutputError struct {
	Raw string
	Err error
}

func (e *MalformedModelOutputError) Error() string {
	if e.Err == nil {
		return "respuesta del modelo sin JSON válido"
	}
	return "respuesta del modelo sin JSON válido: " + e.Err.Error()
}
func (e *MalformedModelOutputError) Unwrap() error { return e.Err }

// RateLimitError fallo transitorio del proveedor (cuota, 429). Dispara el extractor de respaldo.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string { return "límite de uso del modelo: " + e.Err.Error() }
func (e *RateLimitError) Unwrap() error { return e.Err }

// ReconciliationConflictError carrera de unicidad que no se resolvió releyendo.
// Key es el CPF/CNPJ o, para categorías, "tipo/etiqueta".
type ReconciliationConflictError struct {
	Key string
	Err error
}

func (e *ReconciliationConflictError) Error() string {
	return fmt.Sprintf("conflicto de conciliación para %s: %v", e.Key, e.Err)
}
func (e *ReconciliationConflictError) Unwrap() error { return e.Err }

// MaterializationError fallo al insertar movimiento, parcelas o vínculos.
type MaterializationError struct {
	Step string
	Err  error
}

func (e *MaterializationError) Error() string {
	return fmt.Sprintf("materialización (%s): %v", e.Step, e.Err)
}
func (e *MaterializationError) Unwrap() error { return e.Err }
