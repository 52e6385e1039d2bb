package routes

import (
	"time"

	"roomcheck/handlers"
	"roomcheck/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the validation endpoint for both body and query-string callers.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/validate", hb.ValidateAvailability)
		api.GET("/validate", hb.ValidateAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterAdminRoutes sets up endpoints for operator actions.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminTokenMiddleware(hb.AdminToken))
		adminGroup.POST("/cache/categories/invalidate", hb.InvalidateCategoryCache)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterAdminRoutes(r, hb)
}
