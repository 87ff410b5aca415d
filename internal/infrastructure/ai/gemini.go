package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
)

var _ ports.TextCompleter = (*GeminiCompleter)(nil)

// GeminiCompleter adaptador de ports.TextCompleter sobre el SDK oficial google.golang.org/genai.
// El cliente se crea por llamada porque la credencial puede venir en cada request (X-API-Key).
type GeminiCompleter struct {
	model   string
	timeout time.Duration
	baseURL string
}

// NewGeminiCompleter construye el adaptador. model suele ser "gemini-2.0-flash"; timeout acota cada
// request HTTP (sin él el SDK usa un http.Client sin límite).
func NewGeminiCompleter(model string, timeout time.Duration) *GeminiCompleter {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiCompleter{model: model, timeout: timeout}
}

// WithBaseURL apunta el SDK a otra URL base (proxy o servidor de pruebas).
func (g *GeminiCompleter) WithBaseURL(url string) *GeminiCompleter {
	g.baseURL = url
	return g
}

func (g *GeminiCompleter) Complete(ctx context.Context, apiKey, prompt string, params ports.GenerationParams) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("AI: credencial de Gemini vacía")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL, Timeout: &g.timeout},
	})
	if err != nil {
		return "", fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(params.Temperature),
		TopP:             genai.Ptr(params.TopP),
		TopK:             genai.Ptr(float32(params.TopK)),
		MaxOutputTokens:  int32(params.MaxOutputTokens),
		ResponseMIMEType: "application/json",
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		status := 0
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.Code
		}
		return "", classify(status, fmt.Errorf("AI: Gemini: %w", err))
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
