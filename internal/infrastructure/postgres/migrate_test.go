package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/fin?sslmode=disable", pgx5URL("postgres://u:p@db:5432/fin?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/fin", pgx5URL("postgresql://u@db/fin"))
	assert.Equal(t, "pgx5://ya", pgx5URL("pgx5://ya"))
}

func TestMigrationsEmbebidas(t *testing.T) {
	up, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(up)
	for _, table := range []string{"pessoas", "classificacao", "movimentocontas", "parcelacontas", "movimento_classificacao", "historico_processamento"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table)
	}
	assert.Contains(t, sql, "ON pessoas (cnpjcpf) WHERE ativo")

	_, err = migrationsFS.ReadFile("migrations/000001_init.down.sql")
	require.NoError(t, err)
}

func TestDocumentColumn_SoloVariantesConocidas(t *testing.T) {
	for _, ok := range []string{"", "numerodocumento", "numeronotafiscal"} {
		col, err := documentColumn(ok)
		require.NoError(t, err)
		assert.Equal(t, ok, col)
	}
	_, err := documentColumn("valortotal; DROP TABLE pessoas")
	assert.Error(t, err)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty("  "))
	v := nullIfEmpty(" 12.345.678/0001-95 ")
	require.NotNil(t, v)
	assert.Equal(t, "12.345.678/0001-95", *v)
}
