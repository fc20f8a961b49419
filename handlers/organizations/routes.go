package organizations

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to organizations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    admin := r.Group("/admin/organizations")
    admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
    {
        admin.GET("/", GetOrganizations)
        admin.POST("/", CreateOrganization)
        admin.GET("/:id", GetOrganization)
        admin.PUT("/:id", UpdateOrganization)
        admin.DELETE("/:id", DeleteOrganization)
    }

    ws := r.Group("/ws/organizations")
    ws.Use(middleware.AuthMiddleware())
    {
        ws.GET("/:id", OrganizationWebSocket)
    }
}
