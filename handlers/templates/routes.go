package templates

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the specialty catalog
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    admin := r.Group("/admin/templates")
    admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
    {
        admin.GET("/", GetTemplates)
        admin.POST("/", CreateTemplate)
        admin.PUT("/:id", UpdateTemplate)
        admin.DELETE("/:id", DeleteTemplate)
        admin.POST("/:id/assign", AssignTemplate)
    }
}
