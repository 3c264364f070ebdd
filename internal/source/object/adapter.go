package object

import (
	"bytes"
	"context"
	"fmt"

	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/source"
	"github.com/timmy/mediagallery/internal/storage"
)

// ManifestContentType is the content type manifests are uploaded with.
const ManifestContentType = "application/x-ndjson"

// Adapter implements source.Provider over a manifest stored in a bucket.
type Adapter struct {
	store storage.ObjectStorage
	key   string
}

// NewAdapter creates a provider reading the manifest at key.
func NewAdapter(store storage.ObjectStorage, key string) *Adapter {
	return &Adapter{store: store, key: key}
}

// Name returns "object".
func (a *Adapter) Name() string {
	return "object"
}

// Load downloads and decodes the manifest.
func (a *Adapter) Load(ctx context.Context) ([]domain.MediaItem, error) {
	exists, err := a.store.Exists(ctx, a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to check catalog %s: %w", a.key, err)
	}
	if !exists {
		return nil, fmt.Errorf("catalog %s not found. Run the seed command with -target object: %w", a.key, storage.ErrObjectNotFound)
	}

	body, err := a.store.Download(ctx, a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog %s: %w", a.key, err)
	}
	defer body.Close()

	items, skipped, err := source.DecodeManifest(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", a.key, err)
	}
	if skipped > 0 {
		logger.CtxWarn(ctx, "Skipped %d malformed manifest lines in %s", skipped, a.key)
	}
	return items, nil
}

// Publish encodes items as a manifest and uploads it under key.
// Returns the public URL of the uploaded object.
func Publish(ctx context.Context, store storage.ObjectStorage, key string, items []domain.MediaItem) (string, error) {
	var buf bytes.Buffer
	if err := source.EncodeManifest(&buf, items); err != nil {
		return "", err
	}
	size := int64(buf.Len())
	if err := store.Upload(ctx, key, &buf, size, ManifestContentType); err != nil {
		return "", fmt.Errorf("failed to publish catalog %s: %w", key, err)
	}
	return store.GetURL(key), nil
}
