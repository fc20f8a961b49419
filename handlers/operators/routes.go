package operators

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to operator accounts
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    admin := r.Group("/admin/operators")
    admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
    {
        admin.GET("/", GetOperators)
        admin.POST("/", CreateOperator)
        admin.DELETE("/:id", DeleteOperator)
        admin.POST("/:id/reset-password", ResetPassword)
    }
}
