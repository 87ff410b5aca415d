package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
)

var _ ports.TextCompleter = (*AnthropicCompleter)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Você extrai dados de notas fiscais brasileiras. Responda SOMENTE com um objeto JSON válido, sem markdown e sem texto fora do JSON.`
)

// AnthropicCompleter adaptador de ports.TextCompleter usando la API REST de Anthropic (Messages).
type AnthropicCompleter struct {
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewAnthropicCompleter construye el adaptador. model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicCompleter(model string, timeout time.Duration) *AnthropicCompleter {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &AnthropicCompleter{
		model:      model,
		endpoint:   anthropicMessagesURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithEndpoint apunta el adaptador a otra URL (proxy corporativo o servidor de pruebas).
func (s *AnthropicCompleter) WithEndpoint(url string) *AnthropicCompleter {
	s.endpoint = url
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system"`
	Temperature float32            `json:"temperature"`
	TopP        float32            `json:"top_p"`
	TopK        int                `json:"top_k"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

func (s *AnthropicCompleter) Complete(ctx context.Context, apiKey, prompt string, params ports.GenerationParams) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("AI: credencial de Anthropic vacía")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:       s.model,
		MaxTokens:   params.MaxOutputTokens,
		System:      anthropicSystemPrompt,
		Temperature: params.Temperature,
		TopP:        params.TopP,
		TopK:        params.TopK,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", classify(resp.StatusCode, fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message))
		}
		return "", classify(resp.StatusCode, fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	var sb strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.New("AI: Claude devolvió respuesta vacía")
	}
	return sb.String(), nil
}
