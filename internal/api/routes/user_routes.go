package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vitalogapp/vitalog-backend/internal/api/handlers"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
)

type UserRoutes struct {
	handler   *handlers.UserHandler
	jwtSecret string
}

func NewUserRoutes(handler *handlers.UserHandler, jwtSecret string) *UserRoutes {
	return &UserRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers the current-user routes
func (r *UserRoutes) RegisterRoutes(router *gin.Engine) {
	users := router.Group("/api/users")
	users.Use(middleware.NewAuthMiddleware(r.jwtSecret))

	users.GET("/me", r.handler.GetCurrentUser)
	users.PUT("/me/targets", r.handler.UpdateTargets)
	users.PUT("/me/preferences", r.handler.UpdatePreferences)
}
