package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
)

var errNoObject = errors.New("no se encontró un objeto JSON en la respuesta")

// firstObject devuelve el primer objeto {...} balanceado del texto, respetando strings y escapes.
// Si el objeto no cierra devuelve el resto del texto para que la reparación intente completarlo.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return text[start:], true
}

// toStrictJSON intenta, en orden: JSON estricto, reparación (comas finales, comillas simples,
// cierres faltantes) y por último Hjson (claves sin comillas, comentarios).
func toStrictJSON(candidate string) ([]byte, error) {
	if json.Valid([]byte(candidate)) {
		return []byte(candidate), nil
	}
	if repaired, err := jsonrepair.RepairJSON(candidate); err == nil && json.Valid([]byte(repaired)) {
		return []byte(repaired), nil
	}
	var generic map[string]any
	if err := hjson.Unmarshal([]byte(candidate), &generic); err != nil {
		return nil, fmt.Errorf("json inválido: %w", err)
	}
	b, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("re-serializar hjson: %w", err)
	}
	return b, nil
}

// parseModelOutput convierte la respuesta libre del modelo en el formato de salida tipado.
// Cualquier fallo se reporta como *domain.MalformedModelOutputError con el texto original.
func parseModelOutput(raw string) (*modelInvoice, error) {
	malformed := func(err error) error {
		return &domain.MalformedModelOutputError{Raw: raw, Err: err}
	}

	candidate, ok := firstObject(raw)
	if !ok {
		return nil, malformed(errNoObject)
	}
	data, err := toStrictJSON(candidate)
	if err != nil {
		return nil, malformed(err)
	}

	schema, err := invoiceJSONSchema()
	if err != nil {
		return nil, fmt.Errorf("extraction: esquema: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, malformed(err)
	}
	if _, isObject := generic.(map[string]any); !isObject {
		return nil, malformed(errNoObject)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, malformed(fmt.Errorf("json no cumple el esquema: %w", err))
	}

	var out modelInvoice
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, malformed(err)
	}
	return &out, nil
}
