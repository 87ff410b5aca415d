package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ports"
)

var _ ports.TextExtractor = (*Extractor)(nil)

// ErrNotPDF el contenido no empieza con la firma %PDF.
var ErrNotPDF = errors.New("el archivo no es un PDF")

// Extractor convierte el PDF en texto plano página por página, fila por fila.
type Extractor struct{}

// NewExtractor construye el extractor.
func NewExtractor() *Extractor { return &Extractor{} }

// ExtractText un PDF sin capa de texto (escaneado) devuelve "" sin error; decide el extractor de respaldo.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	if !IsPDF(data) {
		return "", ErrNotPDF
	}
	// La librería entra en pánico con algunos PDF corruptos.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("leer PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("abrir PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("leer página %d: %w", i, err)
		}
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, w := range row.Content {
				words = append(words, w.S)
			}
			sb.WriteString(strings.TrimSpace(strings.Join(words, " ")))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// IsPDF comprueba la firma del archivo.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-"))
}
