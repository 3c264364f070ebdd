package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timmy/mediagallery/internal/api/handler"
	"github.com/timmy/mediagallery/internal/api/middleware"
	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/logger"
	"github.com/timmy/mediagallery/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	mediaService *service.MediaService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if log == nil {
		log = logger.GetDefault()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler(mediaService)
	mediaHandler := handler.NewMediaHandler(mediaService, handler.ListingOptions{
		SettingsKey:    cfg.Listing.SettingsKey,
		DefaultPerPage: cfg.Listing.DefaultPerPage,
		MaxPerPage:     cfg.Listing.MaxPerPage,
	})
	folderHandler := handler.NewFolderHandler(mediaService)

	r.GET("/health", healthHandler.Health)

	r.GET("/media", mediaHandler.ListMedia)
	r.POST("/media/:id/downloaded", mediaHandler.Downloaded)
	r.GET("/folders", folderHandler.ListFolders)

	return r
}
