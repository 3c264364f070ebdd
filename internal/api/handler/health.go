package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/mediagallery/internal/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	mediaService *service.MediaService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(mediaService *service.MediaService) *HealthHandler {
	return &HealthHandler{mediaService: mediaService}
}

// Health returns the health status and catalog size.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"items":  h.mediaService.Count(),
	})
}
