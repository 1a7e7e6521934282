package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitalogapp/vitalog-backend/internal/api/handlers"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
)

type DashboardRoutes struct {
	handler   *handlers.DashboardHandler
	jwtSecret string
}

func NewDashboardRoutes(handler *handlers.DashboardHandler, jwtSecret string) *DashboardRoutes {
	return &DashboardRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the dashboard routes
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine) {
	dashboard := router.Group("/api/dashboard")
	dashboard.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	// The window payload carries one summary per date; compress it.
	dashboard.GET("", gzip.Gzip(gzip.DefaultCompression), r.handler.GetDashboard)
}
