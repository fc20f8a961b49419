package specialties

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to specialties
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    operator := r.Group("/specialties")
    operator.Use(middleware.AuthMiddleware(), middleware.OperatorOnly())
    {
        operator.GET("/", GetSpecialties)
        operator.POST("/", CreateSpecialty)
        operator.DELETE("/:id", DeleteSpecialty)
    }

    admin := r.Group("/admin/specialties")
    admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
    {
        admin.PUT("/:id/quota", UpdateQuota)
    }
}
