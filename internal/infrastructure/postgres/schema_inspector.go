package postgres

import (
	"context"
	"fmt"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain/repository"
)

var _ repository.SchemaInspector = (*SchemaInspector)(nil)

// SchemaInspector consulta information_schema del esquema actual.
type SchemaInspector struct {
	q Querier
}

// NewSchemaInspector construye el inspector.
func NewSchemaInspector(q Querier) *SchemaInspector {
	return &SchemaInspector{q: q}
}

func (s *SchemaInspector) ColumnExists(ctx context.Context, table, column string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2)`
	var ok bool
	if err := s.q.QueryRow(ctx, q, table, column).Scan(&ok); err != nil {
		return false, fmt.Errorf("inspect column %s.%s: %w", table, column, err)
	}
	return ok, nil
}
