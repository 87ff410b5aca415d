package dto

import "github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/entity"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=200"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ProcessingErrorResponse fallo del procesamiento de una nota, con la traza acumulada.
type ProcessingErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	State   string              `json:"state"`
	RunID   string              `json:"runId"`
	Trace   []entity.TraceEntry `json:"trace"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
