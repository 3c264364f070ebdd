package mock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/logger"
)

const (
	// DefaultCount is the size of the generated catalog.
	DefaultCount = 2000

	imageWidth  = 600
	imageHeight = 900
)

// Labels the generator assigns at random.
var Labels = []string{"shared", "favorite", "featured", "archived"}

var (
	createdFrom = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	createdTo   = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Options configures catalog generation.
type Options struct {
	Count int
	// Seed drives all content except ids; the same seed yields the same
	// titles, captions and attributions.
	Seed uint64
	// PublicURL prefixes notify_download_url, e.g. http://localhost:3001.
	PublicURL string
}

// Generator produces a fake media catalog.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator. A non-positive count uses DefaultCount.
func NewGenerator(opts Options) *Generator {
	if opts.Count <= 0 {
		opts.Count = DefaultCount
	}
	opts.PublicURL = strings.TrimSuffix(opts.PublicURL, "/")
	return &Generator{opts: opts}
}

// Generate builds opts.Count items.
func (g *Generator) Generate() ([]domain.MediaItem, error) {
	faker := gofakeit.New(g.opts.Seed)
	items := make([]domain.MediaItem, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		id, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("failed to generate id: %w", err)
		}
		items = append(items, g.item(faker, id))
	}
	return items, nil
}

func (g *Generator) item(f *gofakeit.Faker, id string) domain.MediaItem {
	item := domain.MediaItem{
		ID:        id,
		Type:      domain.MediaTypeImage,
		Alt:       sentence(f, f.Number(3, 10)),
		Caption:   words(f, 3),
		Title:     fileName(f, "jpg"),
		Href:      fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", id, imageWidth, imageHeight),
		Hotlink:   f.Bool(),
		Labels:    domain.StringArray{},
		CreatedAt: f.DateRange(createdFrom, createdTo).UTC(),
	}
	if f.Bool() {
		item.Attribution = &domain.Attribution{
			Label: f.Name(),
			Href:  fmt.Sprintf("https://%s/abc?utm_source=your_app_name&utm_medium=referral", f.DomainName()),
		}
	}
	for _, label := range Labels {
		if f.Number(0, 3) == 0 {
			item.Labels = append(item.Labels, label)
		}
	}
	if g.opts.PublicURL != "" {
		item.NotifyDownloadURL = fmt.Sprintf("%s/media/%s/downloaded", g.opts.PublicURL, id)
	}
	return item
}

// words returns n lorem ipsum words separated by spaces.
func words(f *gofakeit.Faker, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.LoremIpsumWord()
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// sentence returns a capitalized lorem ipsum sentence of n words.
func sentence(f *gofakeit.Faker, n int) string {
	s := words(f, n)
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func fileName(f *gofakeit.Faker, ext string) string {
	name := strings.ToLower(f.Adjective() + "_" + f.Noun())
	name = strings.ReplaceAll(name, " ", "_")
	return name + "." + ext
}

// Adapter implements source.Provider by generating the catalog on Load.
type Adapter struct {
	gen *Generator
}

// NewAdapter creates a mock catalog provider.
func NewAdapter(opts Options) *Adapter {
	return &Adapter{gen: NewGenerator(opts)}
}

// Name returns "mock".
func (a *Adapter) Name() string {
	return "mock"
}

// Load generates a fresh catalog.
func (a *Adapter) Load(ctx context.Context) ([]domain.MediaItem, error) {
	start := time.Now()
	items, err := a.gen.Generate()
	if err != nil {
		return nil, err
	}
	logger.With(logger.Fields{"seed": a.gen.opts.Seed}).
		WithCount(len(items)).
		WithDuration(time.Since(start).Milliseconds()).
		Debug(ctx, "Generated mock catalog")
	return items, nil
}
