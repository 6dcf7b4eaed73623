package app

import (
	"learning_progress_backend/docs"
	"learning_progress_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.Host = ""
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// GraphQL，与前端约定的接口
	router.POST("/graphql", c.graphql.Handle)
	router.GET("/graphql", c.graphql.Handle)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		modules := api.Group("/modules")
		{
			modules.GET("", c.module.ListModules)
			modules.GET("/:id", c.module.GetModule)
			modules.PUT("/:id/completion", c.module.ToggleCompletion)
		}

		progress := api.Group("/progress")
		{
			progress.GET("", c.progress.GetProgress)
			progress.GET("/categories", c.progress.GetCategoryProgress)
		}

		// 重置仅在 server.enable_reset 开启时生效
		api.POST("/admin/reset", c.module.Reset)
	}
}
