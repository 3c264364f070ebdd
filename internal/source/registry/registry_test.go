package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/repository"
	"github.com/timmy/mediagallery/internal/source"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "catalog.jsonl")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`{"id":"m1"}`+"\n"), 0o644))

	dbPath := filepath.Join(dir, "media.db")
	db, err := repository.InitDB(&config.DatabaseConfig{Driver: "sqlite", Path: dbPath, AutoMigrate: true})
	require.NoError(t, err)
	require.NoError(t, repository.NewMediaRepository(db).ReplaceAll(ctx, []domain.MediaItem{{ID: "d1", Href: "h"}}))
	sqlDB, _ := db.DB()
	sqlDB.Close()

	tests := []struct {
		provider string
		wantName string
		wantID   string
	}{
		{provider: "manifest", wantName: "manifest", wantID: "m1"},
		{provider: "database", wantName: "database", wantID: "d1"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := &config.Config{
				Catalog:  config.CatalogConfig{Provider: tt.provider, ManifestPath: manifestPath},
				Database: config.DatabaseConfig{Driver: "sqlite", Path: dbPath, AutoMigrate: true},
			}
			p, closer, err := New(ctx, cfg)
			require.NoError(t, err)
			defer closer()

			assert.Equal(t, tt.wantName, p.Name())
			items, err := p.Load(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantID, items[0].ID)
		})
	}
}

func TestNew_Mock(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{PublicURL: "http://localhost:3001"},
		Catalog: config.CatalogConfig{Provider: "MOCK", MockCount: 5, MockSeed: 3},
	}
	p, closer, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()

	items, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestNew_ObjectMissingKey(t *testing.T) {
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Provider: "object", ObjectKey: "catalog/media.jsonl"},
		Storage: config.StorageConfig{Type: "memory"},
	}
	p, _, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "object", p.Name())

	_, err = p.Load(context.Background())
	assert.Error(t, err, "fresh in-memory bucket is empty")
}

func TestNew_Unknown(t *testing.T) {
	_, _, err := New(context.Background(), &config.Config{Catalog: config.CatalogConfig{Provider: "ftp"}})
	assert.ErrorIs(t, err, source.ErrUnknownProvider)
}
