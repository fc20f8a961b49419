package models

import "time"

// User roles
const (
    RoleAdmin    = "admin"
    RoleOperator = "operator"
)

// User represents an admin or operator account. OrganizationID is null for admins and
// references the operator's organization otherwise. A partial unique index created in
// database.InitDB guarantees at most one operator per organization.
type User struct {
    ID             string        `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Login          string        `gorm:"type:varchar(100);unique;not null" json:"login"`
    PasswordHash   string        `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
    Role           string        `gorm:"type:varchar(20);not null;default:'operator'" json:"role"`
    OrganizationID *string       `gorm:"type:uuid;column:organization_id" json:"organization_id"`
    CreatedAt      time.Time     `json:"created_at"`
    Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL" json:"organization,omitempty"`
}

// IsAdmin reports whether the user has cross-organization scope
func (u *User) IsAdmin() bool {
    return u.Role == RoleAdmin
}
