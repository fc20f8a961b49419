package settings

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to application settings
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    admin := r.Group("/admin/settings")
    admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
    {
        admin.GET("/", GetSettings)
        admin.PUT("/", UpdateSettings)
    }
}
