package routes

import (
	"github.com/gin-gonic/gin"

	"audio-redact/internal/api/v1/handlers"
	"audio-redact/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// Use mock storage if no storage service is provided
	storageService := container.StorageService
	if storageService == nil {
		storageService = services.NewMockStorageService()
	}

	redactionHandler := handlers.NewRedactionHandler(container.RedactionService, storageService)
	redactions := router.Group("/redactions")
	{
		redactions.POST("", redactionHandler.Create)
		redactions.POST("/upload", redactionHandler.Upload)
		redactions.GET("/:id", redactionHandler.Get)
		redactions.GET("/:id/report", redactionHandler.GetReport)
		redactions.GET("/:id/download", redactionHandler.Download)
		redactions.DELETE("/:id", redactionHandler.Delete)
		redactions.GET("", redactionHandler.List)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	RedactionService services.RedactionService
	StorageService   services.StorageService
}
