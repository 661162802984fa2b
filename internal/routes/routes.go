package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hredostate/upss-webly/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PageHandler.RegisterRoutes(api)
		appHandlers.NewsHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
	}
}
