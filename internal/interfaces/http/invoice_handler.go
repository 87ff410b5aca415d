package http

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/dto"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/pipeline"
)

// InvoiceProcessor lo que el handler necesita del caso de uso de carga.
type InvoiceProcessor interface {
	Process(ctx context.Context, fileName string, pdf []byte, apiKey string) *pipeline.Result
}

// InvoiceHandler recibe notas fiscales en PDF y las lleva al libro.
type InvoiceHandler struct {
	uc       InvoiceProcessor
	maxBytes int64
}

// NewInvoiceHandler construye el handler. maxMB límite del archivo subido.
func NewInvoiceHandler(uc InvoiceProcessor, maxMB int) *InvoiceHandler {
	if maxMB <= 0 {
		maxMB = 10
	}
	return &InvoiceHandler{uc: uc, maxBytes: int64(maxMB) << 20}
}

// Process godoc
// @Summary      Procesar nota fiscal en PDF
// @Description  Extrae los campos de la nota, concilia proveedor/facturado/categorías y registra el movimiento con sus parcelas.
// @Tags         invoices
// @Accept       multipart/form-data
// @Produce      json
// @Param        pdf        formData  file    true   "Nota fiscal (PDF)"
// @Param        X-API-Key  header    string  false  "Credencial del modelo de lenguaje"
// @Success      200  {object}  pipeline.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ProcessingErrorResponse
// @Router       /api/invoices/process [post]
func (h *InvoiceHandler) Process(c *fiber.Ctx) error {
	fh, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo 'pdf' requerido"})
	}
	if fh.Size > h.maxBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo permitido"})
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan archivos PDF"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-")) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "el contenido no es un PDF"})
	}

	res := h.uc.Process(c.UserContext(), filepath.Base(fh.Filename), data, c.Get("X-API-Key"))
	if res.Success {
		return c.JSON(res)
	}

	status, code := fiber.StatusUnprocessableEntity, "PROCESSING_FAILED"
	if pipeline.IsInputError(res) {
		status, code = fiber.StatusBadRequest, "INVALID_FILE"
	}
	return c.Status(status).JSON(dto.ProcessingErrorResponse{
		Code:    code,
		Message: res.Error,
		State:   string(res.State),
		RunID:   res.RunID,
		Trace:   res.Trace,
	})
}
