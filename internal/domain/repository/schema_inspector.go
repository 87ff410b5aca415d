package repository

import "context"

// Columnas opcionales que varían entre revisiones del esquema desplegado.
const (
	DocumentColumnDocumento  = "numerodocumento"
	DocumentColumnNotaFiscal = "numeronotafiscal"
)

// SchemaInspector responde si una columna existe en el esquema vivo.
type SchemaInspector interface {
	ColumnExists(ctx context.Context, table, column string) (bool, error)
}

// SchemaCapabilities resultado del sondeo de columnas opcionales.
type SchemaCapabilities struct {
	DocumentColumn               string // "" si no hay ninguna variante
	LinkHasValue                 bool
	ClassificationHasDisplayName bool
}
