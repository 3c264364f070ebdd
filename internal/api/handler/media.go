package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/listing"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/service"
)

// ListingOptions controls how listing requests are parsed.
type ListingOptions struct {
	// SettingsKey is the query prefix for gallery settings ("settings" or "search").
	SettingsKey    string
	DefaultPerPage int
	MaxPerPage     int
}

// MediaHandler handles media listing and download notifications.
type MediaHandler struct {
	mediaService *service.MediaService
	opts         ListingOptions
}

// NewMediaHandler creates a new media handler.
// Parameters:
//   - mediaService: media service instance.
//   - opts: query parsing options; zero values fall back to settings/100/1000.
//
// Returns:
//   - *MediaHandler: initialized handler.
func NewMediaHandler(mediaService *service.MediaService, opts ListingOptions) *MediaHandler {
	if opts.SettingsKey == "" {
		opts.SettingsKey = "settings"
	}
	if opts.MaxPerPage <= 0 {
		opts.MaxPerPage = 1000
	}
	if opts.DefaultPerPage <= 0 || opts.DefaultPerPage > opts.MaxPerPage {
		opts.DefaultPerPage = min(100, opts.MaxPerPage)
	}
	return &MediaHandler{
		mediaService: mediaService,
		opts:         opts,
	}
}

// PaginationResponse is the pagination block of a listing response.
type PaginationResponse struct {
	PerPage         int    `json:"per_page"`
	StartCursor     string `json:"start_cursor"`
	EndCursor       string `json:"end_cursor"`
	HasPreviousPage bool   `json:"has_previous_page"`
	HasNextPage     bool   `json:"has_next_page"`
}

// ListMediaResponse is the body of GET /media.
type ListMediaResponse struct {
	Data       []domain.MediaItem `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// ListMedia handles GET /media.
// Parameters:
//   - c: Gin request context.
//
// Returns: none (writes JSON response).
func (h *MediaHandler) ListMedia(c *gin.Context) {
	ctx := c.Request.Context()
	logger.CtxDebug(ctx, "Listing query: %s", c.Request.URL.RawQuery)

	req := listing.Request{
		Settings: h.parseSettings(c),
		After:    c.Query("after"),
		Before:   c.Query("before"),
		PerPage:  h.parsePerPage(c.Query("per_page")),
	}

	page, err := h.mediaService.List(ctx, req)
	if err != nil {
		if errors.Is(err, listing.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		logger.FromContext(ctx).WithError(err).Error("Listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list media",
		})
		return
	}

	c.JSON(http.StatusOK, ListMediaResponse{
		Data: page.Data,
		Pagination: PaginationResponse{
			PerPage:         page.PerPage,
			StartCursor:     page.StartCursor,
			EndCursor:       page.EndCursor,
			HasPreviousPage: page.HasPreviousPage,
			HasNextPage:     page.HasNextPage,
		},
	})
}

// Downloaded handles POST /media/:id/downloaded.
func (h *MediaHandler) Downloaded(c *gin.Context) {
	id := c.Param("id")
	if err := h.mediaService.RecordDownload(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMediaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Media not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record download",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// parsePerPage applies the default for missing, non-numeric or non-positive
// values and caps the result at MaxPerPage.
func (h *MediaHandler) parsePerPage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return h.opts.DefaultPerPage
	}
	return min(n, h.opts.MaxPerPage)
}

// parseSettings reads <key>[field] and falls back to <key>.field.
func (h *MediaHandler) parseSettings(c *gin.Context) listing.Settings {
	bracket := c.QueryMap(h.opts.SettingsKey)
	get := func(field string) string {
		if v, ok := bracket[field]; ok {
			return v
		}
		return c.Query(h.opts.SettingsKey + "." + field)
	}

	settings := listing.Settings{
		Query: get("query"),
		Sort:  listing.ParseSortMode(get("sort")),
	}
	settings.Label = strings.TrimSpace(get("label"))
	settings.Type = strings.TrimSpace(get("type"))
	if raw := strings.TrimSpace(get("hotlink")); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			settings.Hotlink = &v
		}
	}
	return settings
}
