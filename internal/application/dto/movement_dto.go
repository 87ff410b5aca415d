package dto

import "time"

// MovementResponse movimiento expuesto por la API.
type MovementResponse struct {
	ID             int64     `json:"id"`
	Direction      string    `json:"tipo"`
	PersonID       int64     `json:"idPessoa"`
	DocumentNumber string    `json:"numeroDocumento"`
	IssueDate      string    `json:"dataEmissao"`
	TotalValue     string    `json:"valorTotal"`
	Note           string    `json:"observacao"`
	CreatedAt      time.Time `json:"dataCadastro"`
}

// InstallmentResponse parcela expuesta por la API.
type InstallmentResponse struct {
	ID         int64   `json:"id"`
	MovementID int64   `json:"idMovimento"`
	Identifier string  `json:"identificacao"`
	Number     int     `json:"numeroParcela"`
	DueDate    string  `json:"dataVencimento"`
	Value      string  `json:"valorParcela"`
	Status     string  `json:"situacao"`
	PaidAt     *string `json:"dataPagamento"`
	PaidValue  *string `json:"valorPago"`
}

// MovementDetailResponse movimiento con contraparte, parcelas y categorías.
type MovementDetailResponse struct {
	MovementResponse
	Person          *PersonResponse          `json:"pessoa,omitempty"`
	Installments    []InstallmentResponse    `json:"parcelas"`
	Classifications []ClassificationResponse `json:"classificacoes"`
}

// UpdateMovementRequest campos editables; ausentes = sin cambio.
type UpdateMovementRequest struct {
	DocumentNumber *string `json:"numeroDocumento" validate:"omitempty,max=60"`
	IssueDate      *string `json:"dataEmissao" validate:"omitempty,max=20"`
	Note           *string `json:"observacao" validate:"omitempty,max=1000"`
}

// SettleInstallmentRequest baja de una parcela.
type SettleInstallmentRequest struct {
	PaidDate  string `json:"dataPagamento" validate:"omitempty,max=20"`
	PaidValue string `json:"valorPago" validate:"omitempty,numeric"`
}

// LinkClassificationResponse resultado de vincular una categoría.
type LinkClassificationResponse struct {
	MovementID       int64 `json:"idMovimento"`
	ClassificationID int64 `json:"idClassificacao"`
	Created          bool  `json:"created"`
}
