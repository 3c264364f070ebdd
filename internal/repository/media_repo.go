package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/timmy/mediagallery/internal/domain"
	"gorm.io/gorm"
)

const replaceBatchSize = 500

// mediaRecord is the persisted form of a catalog item.
// Position preserves the catalog's base order.
type mediaRecord struct {
	ID                string             `gorm:"primaryKey;type:varchar(64)"`
	Position          int                `gorm:"not null;index"`
	Type              string             `gorm:"type:varchar(32);not null;default:'image'"`
	Alt               string             `gorm:"type:text"`
	Caption           string             `gorm:"type:text"`
	Title             string             `gorm:"type:varchar(512);index"`
	Href              string             `gorm:"type:text;not null"`
	Hotlink           bool               `gorm:"not null;default:false"`
	AttributionLabel  string             `gorm:"type:varchar(256)"`
	AttributionHref   string             `gorm:"type:text"`
	NotifyDownloadURL string             `gorm:"type:text"`
	Labels            domain.StringArray `gorm:"type:text"`
	CreatedAt         time.Time          `gorm:"index"`
}

func (mediaRecord) TableName() string {
	return "media_items"
}

func newMediaRecord(item *domain.MediaItem, position int) mediaRecord {
	rec := mediaRecord{
		ID:                item.ID,
		Position:          position,
		Type:              item.Type,
		Alt:               item.Alt,
		Caption:           item.Caption,
		Title:             item.Title,
		Href:              item.Href,
		Hotlink:           item.Hotlink,
		NotifyDownloadURL: item.NotifyDownloadURL,
		Labels:            item.Labels,
		CreatedAt:         item.CreatedAt,
	}
	if rec.Type == "" {
		rec.Type = domain.MediaTypeImage
	}
	if item.Attribution != nil {
		rec.AttributionLabel = item.Attribution.Label
		rec.AttributionHref = item.Attribution.Href
	}
	return rec
}

func (r *mediaRecord) toDomain() domain.MediaItem {
	item := domain.MediaItem{
		ID:                r.ID,
		Type:              r.Type,
		Alt:               r.Alt,
		Caption:           r.Caption,
		Title:             r.Title,
		Href:              r.Href,
		Hotlink:           r.Hotlink,
		NotifyDownloadURL: r.NotifyDownloadURL,
		Labels:            r.Labels,
		CreatedAt:         r.CreatedAt,
	}
	if item.Labels == nil {
		item.Labels = domain.StringArray{}
	}
	if r.AttributionLabel != "" || r.AttributionHref != "" {
		item.Attribution = &domain.Attribution{Label: r.AttributionLabel, Href: r.AttributionHref}
	}
	return item
}

// MediaRepository handles catalog persistence.
type MediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new MediaRepository.
// Parameters:
//   - db: GORM database handle used for queries.
//
// Returns:
//   - *MediaRepository: repository instance bound to db.
func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// ListAll returns the whole catalog in base order.
func (r *MediaRepository) ListAll(ctx context.Context) ([]domain.MediaItem, error) {
	var records []mediaRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	items := make([]domain.MediaItem, len(records))
	for i := range records {
		items[i] = records[i].toDomain()
	}
	return items, nil
}

// ReplaceAll swaps the catalog for items in a single transaction.
// Slice order becomes the new base order.
func (r *MediaRepository) ReplaceAll(ctx context.Context, items []domain.MediaItem) error {
	records := make([]mediaRecord, len(items))
	for i := range items {
		records[i] = newMediaRecord(&items[i], i)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&mediaRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear media: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, replaceBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert media: %w", err)
		}
		return nil
	})
}

// Count returns the number of stored items.
func (r *MediaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&mediaRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
