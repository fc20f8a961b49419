package organizations

import "time"

// Error message constants
const (
    ErrOrganizationNotFound   = "Organization not found"
    ErrFetchOrganizationsFailed = "Failed to fetch organizations"
    ErrCreateOrganizationFailed = "Failed to create organization"
    ErrUpdateOrganizationFailed = "Failed to update organization"
    ErrDeleteOrganizationFailed = "Failed to delete organization"
)

// CreateOrganizationRequest is the body for creating or renaming an organization
type CreateOrganizationRequest struct {
    Name string `json:"name" binding:"required"`
}

// OrganizationWithStats is an organization together with aggregate counts
type OrganizationWithStats struct {
    ID               string    `json:"id"`
    Name             string    `json:"name"`
    CreatedAt        time.Time `json:"created_at"`
    SpecialtiesCount int64     `json:"specialties_count"`
    StudentsCount    int64     `json:"students_count"`
    OperatorsCount   int64     `json:"operators_count"`
}
