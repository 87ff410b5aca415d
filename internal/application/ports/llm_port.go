package ports

import "context"

// GenerationParams parámetros de muestreo de la completación.
type GenerationParams struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
}

// TextCompleter define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type TextCompleter interface {
	// Complete envía el prompt con la credencial indicada y devuelve texto libre
	// que se espera contenga un objeto JSON. Los errores de cuota deben envolverse
	// en *domain.RateLimitError cuando el adaptador pueda reconocerlos.
	Complete(ctx context.Context, apiKey, prompt string, params GenerationParams) (string, error)
}
