package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/mediagallery/internal/service"
)

// FolderHandler serves the static folder list.
type FolderHandler struct {
	mediaService *service.MediaService
}

// NewFolderHandler creates a new folder handler.
func NewFolderHandler(mediaService *service.MediaService) *FolderHandler {
	return &FolderHandler{mediaService: mediaService}
}

// ListFolders handles GET /folders.
func (h *FolderHandler) ListFolders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.mediaService.Folders(),
	})
}
