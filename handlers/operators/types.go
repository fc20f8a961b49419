package operators

import "time"

// Error message constants
const (
    ErrOperatorNotFound     = "Operator not found"
    ErrFetchOperatorsFailed = "Failed to fetch operators"
    ErrCreateOperatorFailed = "Failed to create operator"
    ErrDeleteOperatorFailed = "Failed to delete operator"
    ErrResetPasswordFailed  = "Failed to reset password"
)

// CreateOperatorRequest names the organization to provision an operator for
type CreateOperatorRequest struct {
    OrganizationID string `json:"organization_id" binding:"required"`
}

// OperatorWithPassword is returned exactly once at provisioning/reset time; the
// plaintext password is never stored
type OperatorWithPassword struct {
    ID                string    `json:"id"`
    Login             string    `json:"login"`
    Role              string    `json:"role"`
    OrganizationID    *string   `json:"organization_id"`
    CreatedAt         time.Time `json:"created_at"`
    GeneratedPassword string    `json:"generated_password"`
}
