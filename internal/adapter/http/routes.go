package http

import (
	"github.com/gin-gonic/gin"

	"github.com/alt-7/task-management/internal/adapter/http/handlers"
	"github.com/alt-7/task-management/internal/adapter/http/middleware"
)

// RegisterRoutes wires the API. Reads are public; mutations go through
// the JWT guard.
func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, authGuard gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		tasks := api.Group("/tasks")
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)

		mutations := tasks.Group("", authGuard)
		mutations.POST("", taskHandler.CreateTask)
		mutations.PUT("/:id", taskHandler.UpdateTask)
		mutations.DELETE("/:id", taskHandler.DeleteTask)
	}
}
