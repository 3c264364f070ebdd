package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/domain"
)

func newTestRepo(t *testing.T) *MediaRepository {
	t.Helper()
	db, err := InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        filepath.Join(t.TempDir(), "data", "media.db"),
		AutoMigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewMediaRepository(db)
}

func TestMediaRepository_ReplaceAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	created := time.Date(2023, 7, 4, 9, 30, 0, 0, time.UTC)

	items := []domain.MediaItem{
		{ID: "z", Title: "last-id-first.jpg", Href: "https://picsum.photos/seed/z/600/900", CreatedAt: created},
		{ID: "a", Title: "second.jpg", Href: "https://picsum.photos/seed/a/600/900", Hotlink: true,
			Labels:      domain.StringArray{"favorite", "shared"},
			Attribution: &domain.Attribution{Label: "Grace Hopper", Href: "https://navy.example"}},
	}
	require.NoError(t, repo.ReplaceAll(ctx, items))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "z", got[0].ID, "base order follows insertion position, not id")
	assert.Equal(t, domain.MediaTypeImage, got[0].Type)
	assert.Nil(t, got[0].Attribution)
	assert.NotNil(t, got[0].Labels)
	assert.True(t, got[0].CreatedAt.Equal(created))

	assert.Equal(t, "a", got[1].ID)
	assert.True(t, got[1].Hotlink)
	assert.True(t, got[1].Labels.Contains("favorite"))
	require.NotNil(t, got[1].Attribution)
	assert.Equal(t, "Grace Hopper", got[1].Attribution.Label)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestMediaRepository_ReplaceAllOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.ReplaceAll(ctx, []domain.MediaItem{{ID: "old", Href: "h"}}))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.MediaItem{{ID: "new", Href: "h"}}))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
