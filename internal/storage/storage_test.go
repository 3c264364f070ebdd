package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/logger"
)

func TestDetectStorageType(t *testing.T) {
	tests := []struct {
		endpoint string
		want     StorageType
	}{
		{"", StorageTypeMemory},
		{"https://abc.r2.cloudflarestorage.com", StorageTypeR2},
		{"s3.us-west-2.amazonaws.com", StorageTypeS3},
		{"localhost:9000", StorageTypeS3Compatible},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectStorageType(tt.endpoint), tt.endpoint)
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "localhost:9000", normalizeEndpoint("http://localhost:9000/"))
	assert.Equal(t, "minio.internal", normalizeEndpoint("https://minio.internal/bucket/path"))
}

func TestNewStorage(t *testing.T) {
	store, err := NewStorage(&config.StorageConfig{Type: "memory", PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/catalog.jsonl", store.GetURL("catalog.jsonl"))

	_, err = NewStorage(&config.StorageConfig{Type: "s3"})
	assert.Error(t, err, "endpoint required")

	_, err = NewStorage(&config.StorageConfig{Type: "ftp"})
	assert.Error(t, err)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage("")

	ok, err := store.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Download(ctx, "a")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	require.NoError(t, store.Upload(ctx, "a", strings.NewReader("hello"), 5, "text/plain"))
	ok, err = store.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := store.Download(ctx, "a")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestNewStorage_WarnsOnMemoryBackend(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.GetDefault()
	logger.SetDefaultLogger(logger.New(&logger.Config{Level: "info", Format: "json", Output: &buf}))
	t.Cleanup(func() { logger.SetDefaultLogger(prev) })

	store, err := NewStorage(&config.StorageConfig{Bucket: "media"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, store, "empty endpoint selects memory")
	assert.Contains(t, buf.String(), "in-memory object storage")
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
