package entity

import "time"

// TraceEntry mensaje del log de progreso de un procesamiento. ID es 1-based y secuencial.
type TraceEntry struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ProcessingRecord resultado persistido de un procesamiento de nota (historial).
type ProcessingRecord struct {
	ID                string            `json:"id"`
	FileName          string            `json:"fileName"`
	ProcessedAt       time.Time         `json:"processedAt"`
	Success           bool              `json:"success"`
	MovementID        *int64            `json:"movementId,omitempty"`
	SupplierID        *int64            `json:"supplierId,omitempty"`
	BilledPartyID     *int64            `json:"billedPartyId,omitempty"`
	ClassificationIDs []int64           `json:"classificationIds"`
	InstallmentIDs    []int64           `json:"installmentIds"`
	Trace             []TraceEntry      `json:"trace"`
	ExtractedInvoice  *ExtractedInvoice `json:"extractedInvoice,omitempty"`
	Error             string            `json:"error,omitempty"`
}
