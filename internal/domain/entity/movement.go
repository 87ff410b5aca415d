package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction dirección contable del movimiento.
type Direction string

const (
	DirectionPayable    Direction = "APAGAR"
	DirectionReceivable Direction = "ARECEBER"
)

// Valid indica si la dirección es una de las conocidas.
func (d Direction) Valid() bool {
	return d == DirectionPayable || d == DirectionReceivable
}

// Movement un evento financiero (una nota convertida en conta a pagar o a receber).
type Movement struct {
	ID             int64
	Direction      Direction
	PersonID       int64
	DocumentNumber string
	IssueDate      time.Time
	TotalValue     decimal.Decimal
	Note           string
	Active         bool
	CreatedAt      time.Time
}

// InstallmentStatus situación de la parcela.
type InstallmentStatus string

const (
	InstallmentOpen InstallmentStatus = "ABERTA"
	InstallmentPaid InstallmentStatus = "PAGA"
)

// Installment parcela de un movimiento. Number es 1-based y sin huecos dentro del movimiento.
type Installment struct {
	ID         int64
	MovementID int64
	Identifier string // "{movimiento}_{número}"
	Number     int
	DueDate    time.Time
	Value      decimal.Decimal
	Status     InstallmentStatus
	PaidAt     *time.Time
	PaidValue  decimal.NullDecimal
	Active     bool
}

// MovementClassification vínculo movimiento-categoría; el par es único.
type MovementClassification struct {
	MovementID       int64
	ClassificationID int64
	Value            decimal.NullDecimal
}
