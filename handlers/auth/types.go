package auth

// Error and message constants
const (
	ErrLoginFailed         = "Failed to authenticate"
	ErrInvalidCredentials  = "Invalid login or password"
	ErrTokenGenerateFailed = "Failed to generate token"
	MsgLogoutSuccess       = "Logged out"
)

// LoginRequest carries the credentials for password authentication
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse describes the authenticated user and, for token-issuing endpoints,
// carries the JWT
type AuthResponse struct {
	Token            string  `json:"token,omitempty"`
	UserID           string  `json:"user_id"`
	Login            string  `json:"login"`
	Role             string  `json:"role"`
	OrganizationID   *string `json:"organization_id,omitempty"`
	OrganizationName string  `json:"organization_name,omitempty"`
}
