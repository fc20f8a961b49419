package stats

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to statistics
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    stats := r.Group("/stats")
    stats.Use(middleware.AuthMiddleware())
    {
        stats.GET("/", GetStats)
    }
}
