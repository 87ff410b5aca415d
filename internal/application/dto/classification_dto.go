package dto

// ClassificationRequest alta o edición de una categoría.
type ClassificationRequest struct {
	Kind  string `json:"tipo" validate:"required,oneof=DESPESA RECEITA"`
	Label string `json:"descricao" validate:"required,max=255"`
}

// ClassificationResponse categoría expuesta por la API.
type ClassificationResponse struct {
	ID     int64  `json:"id"`
	Kind   string `json:"tipo"`
	Label  string `json:"descricao"`
	Active bool   `json:"ativo"`
}
