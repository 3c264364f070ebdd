package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/listing"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/source"
)

// ErrMediaNotFound is returned when a download notification names an unknown item.
var ErrMediaNotFound = errors.New("media not found")

// MediaConfig holds configuration for the media service.
type MediaConfig struct {
	PublicURL string
	Folders   []domain.Folder
}

// MediaService serves listings over an immutable catalog snapshot.
type MediaService struct {
	items       []domain.MediaItem
	byID        map[string]int
	byNotifyURL map[string]int
	pipeline    *listing.Pipeline
	notifier    Notifier
	publicURL   string
	folders     []domain.Folder
	now         func() time.Time
}

// NewMediaService creates a media service over items.
// Parameters:
//   - items: catalog snapshot in base order; the service keeps its own copy.
//   - pipeline: listing pipeline; nil uses listing defaults.
//   - notifier: download webhook; nil disables forwarding.
//   - cfg: public URL and folders.
//
// Returns:
//   - *MediaService: initialized service.
func NewMediaService(items []domain.MediaItem, pipeline *listing.Pipeline, notifier Notifier, cfg *MediaConfig) *MediaService {
	if pipeline == nil {
		pipeline = listing.NewPipeline(nil)
	}
	if notifier == nil {
		notifier = NewDownloadNotifier(nil)
	}
	if cfg == nil {
		cfg = &MediaConfig{}
	}

	snapshot := make([]domain.MediaItem, len(items))
	copy(snapshot, items)

	s := &MediaService{
		items:       snapshot,
		byID:        make(map[string]int, len(snapshot)),
		byNotifyURL: make(map[string]int, len(snapshot)),
		pipeline:    pipeline,
		notifier:    notifier,
		publicURL:   strings.TrimSuffix(cfg.PublicURL, "/"),
		folders:     cfg.Folders,
		now:         time.Now,
	}
	for i := range snapshot {
		if _, dup := s.byID[snapshot[i].ID]; !dup {
			s.byID[snapshot[i].ID] = i
		}
		if u := snapshot[i].NotifyDownloadURL; u != "" {
			s.byNotifyURL[u] = i
		}
	}
	return s
}

// LoadMediaService loads the catalog from provider and builds the service.
func LoadMediaService(ctx context.Context, provider source.Provider, pipeline *listing.Pipeline, notifier Notifier, cfg *MediaConfig) (*MediaService, error) {
	start := time.Now()
	items, err := provider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", provider.Name(), err)
	}
	logger.With(logger.Fields{logger.FieldProvider: provider.Name()}).
		WithCount(len(items)).
		WithDuration(time.Since(start).Milliseconds()).
		Info(ctx, "Catalog loaded")
	return NewMediaService(items, pipeline, notifier, cfg), nil
}

// List runs the listing pipeline over the snapshot.
func (s *MediaService) List(ctx context.Context, req listing.Request) (*listing.Page[domain.MediaItem], error) {
	start := time.Now()
	page, err := s.pipeline.ListPage(s.items, req)
	if err != nil {
		return nil, err
	}
	logger.With(logger.Fields{
		"query":    req.Settings.Query,
		"sort":     string(req.Settings.Sort),
		"per_page": req.PerPage,
	}).WithCount(len(page.Data)).
		WithDuration(time.Since(start).Milliseconds()).
		Debug(ctx, "Listing served")
	return page, nil
}

// NotifyURL returns the notification URL for id under the public base URL.
func (s *MediaService) NotifyURL(id string) string {
	return fmt.Sprintf("%s/media/%s/downloaded", s.publicURL, id)
}

// Find resolves an item by its notification URL, falling back to its id.
func (s *MediaService) Find(id string) (*domain.MediaItem, error) {
	if i, ok := s.byNotifyURL[s.NotifyURL(id)]; ok {
		item := s.items[i]
		return &item, nil
	}
	if i, ok := s.byID[id]; ok {
		item := s.items[i]
		return &item, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMediaNotFound, id)
}

// RecordDownload logs a download of id and forwards it to the webhook.
// Webhook failures are logged and not returned.
func (s *MediaService) RecordDownload(ctx context.Context, id string) error {
	item, err := s.Find(id)
	if err != nil {
		return err
	}

	ctx = logger.WithField(ctx, logger.FieldMediaID, item.ID)
	logger.CtxInfo(ctx, "Media downloaded: %s", item.Title)

	if !s.notifier.IsEnabled() {
		return nil
	}
	if err := s.notifier.Notify(ctx, NewDownloadEvent(item, s.now())); err != nil {
		logger.FromContext(ctx).WithError(err).Warn("Download webhook failed")
	}
	return nil
}

// Folders returns the configured folder list.
func (s *MediaService) Folders() []domain.Folder {
	out := make([]domain.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// Count returns the snapshot size.
func (s *MediaService) Count() int {
	return len(s.items)
}
