package pdftext_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/infrastructure/pdftext"
)

func TestIsPDF(t *testing.T) {
	assert.True(t, pdftext.IsPDF([]byte("%PDF-1.7\n...")))
	assert.True(t, pdftext.IsPDF([]byte("\n%PDF-1.4")))
	assert.False(t, pdftext.IsPDF([]byte("PK\x03\x04")))
	assert.False(t, pdftext.IsPDF(nil))
}

func TestExtractText_RechazaNoPDF(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractText(context.Background(), []byte("hola"))
	require.ErrorIs(t, err, pdftext.ErrNotPDF)
}

func TestExtractText_PDFCorruptoEsError(t *testing.T) {
	_, err := pdftext.NewExtractor().ExtractText(context.Background(), []byte("%PDF-1.4\nbasura sin xref"))
	assert.Error(t, err)
}
