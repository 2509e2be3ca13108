package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.DBConn)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_CONN", "host=db port=5432 user=app dbname=users sslmode=disable")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "host=db port=5432 user=app dbname=users sslmode=disable", cfg.DBConn)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}
