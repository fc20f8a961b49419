package auth

import (
	"net/http"
	"time"

	"api/middleware"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// setCookieToken sets the authentication token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		int(utils.TokenDuration/time.Second),
		"/",
		"",
		true,
		true,
	)
}

// Login authenticates a user by login and password
// @Summary Login
// @Description Authenticate with login/password and receive a JWT, rate limited per IP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401,429 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
    var req LoginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    user, err := services.Authenticate(req.Login, req.Password)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrLoginFailed)
        return
    }
    if user == nil {
        response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
        return
    }

    token, err := utils.GenerateToken(user.ID)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
        return
    }
    setCookieToken(c, token)

    resp := AuthResponse{
        Token:          token,
        UserID:         user.ID,
        Login:          user.Login,
        Role:           user.Role,
        OrganizationID: user.OrganizationID,
    }
    if user.Organization != nil {
        resp.OrganizationName = user.Organization.Name
    }
    c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Get the authenticated user's identity and organization scope
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
// @Security Bearer
func Me(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    resp := AuthResponse{
        UserID:         user.ID,
        Login:          user.Login,
        Role:           user.Role,
        OrganizationID: user.OrganizationID,
    }
    if user.Organization != nil {
        resp.OrganizationName = user.Organization.Name
    }
    c.JSON(http.StatusOK, resp)
}

// Logout clears the authentication cookie
// @Summary Logout
// @Description Clear the authentication cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
    c.SetSameSite(http.SameSiteLaxMode)
    c.SetCookie("auth_token", "", -1, "/", "", true, true)
    c.JSON(http.StatusOK, gin.H{"message": MsgLogoutSuccess})
}
