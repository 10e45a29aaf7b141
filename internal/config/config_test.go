package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FOLIO_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "24h0m0s", cfg.Server.TokenTTL.String())
	assert.Equal(t, 10, cfg.Server.LoginRate)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "folio.db"), cfg.Server.DBPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FOLIO_HOME", t.TempDir())
	t.Setenv("FOLIO_ADDR", ":9191")
	t.Setenv("FOLIO_API_URL", "https://folio.example.com")
	t.Setenv("FOLIO_JWT_SECRET", "s3cret")
	t.Setenv("FOLIO_DB_PATH", "/tmp/custom.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Server.Addr)
	assert.Equal(t, "https://folio.example.com", cfg.API.BaseURL)
	assert.Equal(t, "s3cret", cfg.Server.JWTSecret)
	assert.Equal(t, "/tmp/custom.db", cfg.Server.DBPath)
}

func TestGetPaths(t *testing.T) {
	cfg := &Config{BaseDir: "/data/folio"}
	paths := GetPaths(cfg)

	assert.Equal(t, "/data/folio/folio.db", paths.Database)
	assert.Equal(t, "/data/folio/token", paths.Token)
	assert.Equal(t, "/data/folio/logs", paths.Log)
}
