package middleware

import (
	"errors"
	"net/http"
	"strings"

	"api/models"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware validates the JWT from the auth cookie or Authorization header and
// stores the resolved user in the request context
func AuthMiddleware() gin.HandlerFunc {
    return func(c *gin.Context) {
        token := extractToken(c)
        if token == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
            return
        }

        userID, err := utils.ParseToken(token)
        if err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
            return
        }

        user, err := services.GetUserByID(userID)
        if err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
            return
        }

        c.Set(userContextKey, user)
        c.Next()
    }
}

// AdminOnly rejects requests from non-admin accounts
func AdminOnly() gin.HandlerFunc {
    return func(c *gin.Context) {
        user, err := GetUserFromRequest(c)
        if err != nil {
            return // Error already handled
        }
        if !user.IsAdmin() {
            c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
            return
        }
        c.Next()
    }
}

// OperatorOnly rejects requests from accounts that are not organization-scoped operators
func OperatorOnly() gin.HandlerFunc {
    return func(c *gin.Context) {
        user, err := GetUserFromRequest(c)
        if err != nil {
            return // Error already handled
        }
        if user.Role != models.RoleOperator || user.OrganizationID == nil {
            c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Operator access required"})
            return
        }
        c.Next()
    }
}

// GetUserFromRequest returns the authenticated user stored by AuthMiddleware
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
    value, exists := c.Get(userContextKey)
    if !exists {
        response.Error(c, http.StatusUnauthorized, "Not authenticated")
        c.Abort()
        return nil, errors.New("user not in context")
    }

    user, ok := value.(*models.User)
    if !ok {
        response.Error(c, http.StatusInternalServerError, "Invalid user in context")
        c.Abort()
        return nil, errors.New("invalid user in context")
    }
    return user, nil
}

func extractToken(c *gin.Context) string {
    if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
        return cookie
    }
    header := c.GetHeader("Authorization")
    if strings.HasPrefix(header, "Bearer ") {
        return strings.TrimPrefix(header, "Bearer ")
    }
    return ""
}
