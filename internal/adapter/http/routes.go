package http

import (
	"todoboard/internal/adapter/http/handlers"
	"todoboard/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler, userHandler *handlers.UserHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/todos", todoHandler.ListTodos)
		api.POST("/todos", todoHandler.CreateTodo)
		api.GET("/todos/export", todoHandler.ExportTodos)
		api.GET("/todos/:id", todoHandler.GetTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
		api.POST("/todos/:id/notes", todoHandler.AddNote)

		api.GET("/users", userHandler.ListUsers)
		api.POST("/users", userHandler.CreateUser)
	}
}
