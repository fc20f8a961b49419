package v1

import (
	"api/handlers/auth"
	"api/handlers/operators"
	"api/handlers/organizations"
	"api/handlers/settings"
	"api/handlers/specialties"
	"api/handlers/stats"
	"api/handlers/students"
	"api/handlers/templates"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
    v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500) // 10000 requests per minute, 1500 burst
    v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	organizations.RegisterRoutes(v1)
	templates.RegisterRoutes(v1)
	specialties.RegisterRoutes(v1)
	students.RegisterRoutes(v1)
	operators.RegisterRoutes(v1)
	settings.RegisterRoutes(v1)
	stats.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
