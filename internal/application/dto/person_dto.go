package dto

import "time"

// CreatePersonRequest alta administrativa de una persona.
type CreatePersonRequest struct {
	Role      string `json:"tipo" validate:"required,oneof=FORNECEDOR FATURADO CLIENTE"`
	LegalName string `json:"razaoSocial" validate:"required,max=255"`
	TradeName string `json:"fantasia" validate:"max=255"`
	TaxID     string `json:"cnpjCpf" validate:"required,max=18"`
}

// UpdatePersonRequest edición de una persona.
type UpdatePersonRequest struct {
	Role      string `json:"tipo" validate:"required,oneof=FORNECEDOR FATURADO CLIENTE"`
	LegalName string `json:"razaoSocial" validate:"required,max=255"`
	TradeName string `json:"fantasia" validate:"max=255"`
	TaxID     string `json:"cnpjCpf" validate:"max=18"`
}

// PersonResponse persona expuesta por la API.
type PersonResponse struct {
	ID        int64     `json:"id"`
	Role      string    `json:"tipo"`
	LegalName string    `json:"razaoSocial"`
	TradeName string    `json:"fantasia"`
	TaxID     string    `json:"cnpjCpf"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"dataCadastro"`
}
