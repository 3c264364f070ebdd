package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/mediagallery/internal/domain"
)

const downloadEventType = "media.downloaded"

// DownloadEvent is the webhook payload sent when an item is downloaded.
type DownloadEvent struct {
	Event             string    `json:"event"`
	MediaID           string    `json:"media_id"`
	Title             string    `json:"title"`
	Href              string    `json:"href"`
	NotifyDownloadURL string    `json:"notify_download_url"`
	DownloadedAt      time.Time `json:"downloaded_at"`
}

// NewDownloadEvent builds the event for item at time at.
func NewDownloadEvent(item *domain.MediaItem, at time.Time) DownloadEvent {
	return DownloadEvent{
		Event:             downloadEventType,
		MediaID:           item.ID,
		Title:             item.Title,
		Href:              item.Href,
		NotifyDownloadURL: item.NotifyDownloadURL,
		DownloadedAt:      at.UTC(),
	}
}

// Notifier forwards download events.
type Notifier interface {
	IsEnabled() bool
	Notify(ctx context.Context, event DownloadEvent) error
}

// DownloadNotifierConfig holds configuration for the webhook client.
type DownloadNotifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// DownloadNotifier posts download events to a webhook.
type DownloadNotifier struct {
	client  *resty.Client
	url     string
	enabled bool
}

// NewDownloadNotifier creates a webhook notifier. An empty WebhookURL disables it.
func NewDownloadNotifier(cfg *DownloadNotifierConfig) *DownloadNotifier {
	if cfg == nil || cfg.WebhookURL == "" {
		return &DownloadNotifier{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("User-Agent", "mediagallery/1.0")

	return &DownloadNotifier{
		client:  client,
		url:     cfg.WebhookURL,
		enabled: true,
	}
}

// IsEnabled reports whether a webhook is configured.
func (n *DownloadNotifier) IsEnabled() bool {
	return n.enabled
}

// Notify posts event to the webhook. It is a no-op when disabled.
func (n *DownloadNotifier) Notify(ctx context.Context, event DownloadEvent) error {
	if !n.enabled {
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(event).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("failed to call download webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("download webhook error: status %d", resp.StatusCode())
	}
	return nil
}
