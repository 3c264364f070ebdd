package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  mode: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "http://localhost:3001", cfg.Server.PublicURL)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "mock", cfg.Catalog.Provider)
	assert.Equal(t, 2000, cfg.Catalog.MockCount)
	assert.Equal(t, "settings", cfg.Listing.SettingsKey)
	assert.Equal(t, 100, cfg.Listing.DefaultPerPage)
	assert.Equal(t, 1000, cfg.Listing.MaxPerPage)
	assert.InDelta(t, 0.25, cfg.Listing.SearchThreshold, 1e-9)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/media.db", cfg.Database.DSN())
	assert.NotEmpty(t, cfg.Folders)
}

func TestLoad_FileOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 8080
  public_url: https://gallery.example.com/
listing:
  settings_key: search
  default_per_page: 5000
  max_per_page: 250
catalog:
  provider: database
database:
  driver: postgres
  url: postgres://u:p@db/media
folders:
  - id: all
    name: Everything
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://gallery.example.com", cfg.Server.PublicURL)
	assert.Equal(t, "search", cfg.Listing.SettingsKey)
	assert.Equal(t, 250, cfg.Listing.MaxPerPage)
	assert.Equal(t, 250, cfg.Listing.DefaultPerPage, "default is capped by max")
	assert.Equal(t, "database", cfg.Catalog.Provider)
	assert.Equal(t, "postgres://u:p@db/media", cfg.Database.DSN())
	require.Len(t, cfg.Folders, 1)
	assert.Equal(t, "Everything", cfg.Folders[0].Name)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
