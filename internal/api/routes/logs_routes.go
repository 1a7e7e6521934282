package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalogapp/vitalog-backend/internal/api/handlers"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
)

type LogsRoutes struct {
	handler   *handlers.LogsHandler
	jwtSecret string
}

func NewLogsRoutes(handler *handlers.LogsHandler, jwtSecret string) *LogsRoutes {
	return &LogsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the per-stream log routes
func (r *LogsRoutes) RegisterRoutes(router *gin.Engine) {
	logs := router.Group("/api/logs")
	logs.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	logs.POST("/sleep", r.handler.CreateSleepLog)
	logs.GET("/sleep", gzip.Gzip(gzip.DefaultCompression), r.handler.ListSleepLogs)

	logs.POST("/water", r.handler.CreateWaterLog)
	logs.GET("/water", gzip.Gzip(gzip.DefaultCompression), r.handler.ListWaterLogs)

	logs.POST("/mood", r.handler.CreateMoodLog)
	logs.GET("/mood", gzip.Gzip(gzip.DefaultCompression), r.handler.ListMoodLogs)

	logs.POST("/exercise", r.handler.CreateExerciseLog)
	logs.GET("/exercise", gzip.Gzip(gzip.DefaultCompression), r.handler.ListExerciseLogs)

	logs.POST("/health", r.handler.CreateHealthLog)
	logs.GET("/health", gzip.Gzip(gzip.DefaultCompression), r.handler.ListHealthLogs)

	logs.DELETE("/:stream/:id", r.handler.DeleteLog)
}
