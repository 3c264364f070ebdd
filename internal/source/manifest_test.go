package source

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timmy/mediagallery/internal/domain"
)

func TestEncodeDecodeManifest(t *testing.T) {
	created := time.Date(2022, 2, 2, 2, 2, 2, 0, time.UTC)
	items := []domain.MediaItem{
		{ID: "1", Type: domain.MediaTypeImage, Title: "a.jpg", Href: "https://x/1?a=1&b=2",
			Labels: domain.StringArray{"shared"}, CreatedAt: created},
		{ID: "2", Type: domain.MediaTypeImage, Title: "b.jpg",
			Attribution: &domain.Attribution{Label: "L", Href: "https://l.example"}},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeManifest(&buf, items))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	got, skipped, err := DecodeManifest(&buf)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, got, 2)
	assert.Equal(t, items[0].Href, got[0].Href)
	assert.True(t, got[0].CreatedAt.Equal(created))
	assert.Equal(t, domain.StringArray{"shared"}, got[0].Labels)
	assert.Nil(t, got[0].Attribution)
	assert.Equal(t, "L", got[1].AttributionLabel())
}

func TestDecodeManifest_SkipsBadLines(t *testing.T) {
	body := "\n{\"id\":\"ok\"}\n[1,2]\n{\"title\":\"no id\"}\n   \n"
	got, skipped, err := DecodeManifest(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, got, 1)
	assert.Equal(t, domain.MediaTypeImage, got[0].Type)
}

func TestDecodeManifest_Empty(t *testing.T) {
	got, skipped, err := DecodeManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStatic_LoadCopies(t *testing.T) {
	p := &Static{Items: []domain.MediaItem{{ID: "a"}}}
	got, err := p.Load(context.Background())
	require.NoError(t, err)
	got[0].ID = "changed"
	assert.Equal(t, "a", p.Items[0].ID)
	assert.Equal(t, "static", p.Name())
}
