package entity

// ClassificationKind naturaleza de la categoría.
type ClassificationKind string

const (
	ClassificationExpense ClassificationKind = "DESPESA"
	ClassificationRevenue ClassificationKind = "RECEITA"
)

// Valid indica si el tipo es uno de los conocidos.
func (k ClassificationKind) Valid() bool {
	return k == ClassificationExpense || k == ClassificationRevenue
}

// UnclassifiedLabel etiqueta usada cuando la categoría llega vacía.
const UnclassifiedLabel = "UNCLASSIFIED"

// Classification categoría de despesa o receita. (Kind, UPPER(Label)) es única entre activas.
type Classification struct {
	ID     int64
	Kind   ClassificationKind
	Label  string
	Active bool
}
