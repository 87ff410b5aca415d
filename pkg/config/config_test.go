package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/pkg/config"
)

func TestLoad_NormalizaValores(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("EXTRACTION_PJ_PJ_DIRECTION", "apagar")
	t.Setenv("HISTORY_BACKEND", "postgres")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "APAGAR", cfg.Extraction.OrganizationsDirection)
	assert.Equal(t, "g-key", cfg.AI.DefaultAPIKey())
	assert.Equal(t, 3001, cfg.HTTP.Port)
}

func TestLoad_ProveedorDesconocido(t *testing.T) {
	t.Setenv("AI_PROVIDER", "openai")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DireccionInvalida(t *testing.T) {
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("EXTRACTION_PJ_PJ_DIRECTION", "AMBOS")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "fin", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/fin?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
