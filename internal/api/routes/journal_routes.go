package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalogapp/vitalog-backend/internal/api/handlers"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
)

type JournalRoutes struct {
	handler   *handlers.JournalHandler
	jwtSecret string
}

func NewJournalRoutes(handler *handlers.JournalHandler, jwtSecret string) *JournalRoutes {
	return &JournalRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the journal routes
func (r *JournalRoutes) RegisterRoutes(router *gin.Engine) {
	journal := router.Group("/api/journal")
	journal.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	// Specific routes first
	journal.GET("/stats", r.handler.GetStats)

	journal.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.ListEntries)
	journal.POST("", r.handler.CreateEntry)
	journal.GET("/:id", r.handler.GetEntry)
	journal.DELETE("/:id", r.handler.DeleteEntry)
}
