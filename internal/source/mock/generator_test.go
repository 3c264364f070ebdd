package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/domain"
)

func TestGenerate_Shape(t *testing.T) {
	items, err := NewGenerator(Options{Count: 200, Seed: 7, PublicURL: "http://localhost:3001/"}).Generate()
	require.NoError(t, err)
	require.Len(t, items, 200)

	ids := make(map[string]struct{}, len(items))
	withAttribution := 0
	for _, item := range items {
		assert.Len(t, item.ID, 21)
		assert.Equal(t, domain.MediaTypeImage, item.Type)
		assert.True(t, strings.HasSuffix(item.Title, ".jpg"), item.Title)
		assert.Len(t, strings.Fields(item.Caption), 3, item.Caption)
		assert.True(t, strings.HasSuffix(item.Alt, "."), item.Alt)
		altWords := len(strings.Fields(item.Alt))
		assert.True(t, altWords >= 3 && altWords <= 10, item.Alt)
		assert.Equal(t, "https://picsum.photos/seed/"+item.ID+"/600/900", item.Href)
		assert.Equal(t, "http://localhost:3001/media/"+item.ID+"/downloaded", item.NotifyDownloadURL)
		assert.NotNil(t, item.Labels)
		assert.False(t, item.CreatedAt.IsZero())
		if item.Attribution != nil {
			withAttribution++
			assert.NotEmpty(t, item.Attribution.Label)
			assert.Contains(t, item.Attribution.Href, "utm_source=your_app_name&utm_medium=referral")
		}
		ids[item.ID] = struct{}{}
	}
	assert.Len(t, ids, 200, "ids are unique")
	assert.Greater(t, withAttribution, 0)
	assert.Less(t, withAttribution, 200)
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	a, err := NewGenerator(Options{Count: 20, Seed: 42}).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(Options{Count: 20, Seed: 42}).Generate()
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, a[i].Caption, b[i].Caption)
		assert.Equal(t, a[i].AttributionLabel(), b[i].AttributionLabel())
		assert.True(t, a[i].CreatedAt.Equal(b[i].CreatedAt))
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	items, err := NewAdapter(Options{Seed: 1}).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, DefaultCount)
	assert.Empty(t, items[0].NotifyDownloadURL, "no public URL configured")
}
