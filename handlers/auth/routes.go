package auth

import (
	"api/config"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the authentication endpoints
func RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.LoginAttemptLimiter(config.DefaultLoginRateLimitConfig), Login)
		group.POST("/logout", Logout)
		group.GET("/me", middleware.AuthMiddleware(), Me)
	}
}
