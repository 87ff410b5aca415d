package ports

import "context"

// TextExtractor convierte un PDF en texto plano (colaborador externo del pipeline).
type TextExtractor interface {
	ExtractText(ctx context.Context, pdf []byte) (string, error)
}
