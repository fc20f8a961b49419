package specialties

import "time"

// Error message constants
const (
    ErrSpecialtyNotFound      = "Specialty not found or does not belong to your organization"
    ErrFetchSpecialtiesFailed = "Failed to fetch specialties"
    ErrCreateSpecialtyFailed  = "Failed to create specialty"
    ErrDeleteSpecialtyFailed  = "Failed to delete specialty"
    ErrUpdateQuotaFailed      = "Failed to update quota"
)

// CreateSpecialtyRequest is the body for the legacy template-less specialty path
type CreateSpecialtyRequest struct {
    Name string `json:"name" binding:"required"`
}

// QuotaUpdateRequest carries a new quota value for a specialty
type QuotaUpdateRequest struct {
    Quota *int `json:"quota" binding:"required,min=0"`
}

// SpecialtyWithStats is a specialty together with its occupancy
type SpecialtyWithStats struct {
    ID             string    `json:"id"`
    OrganizationID string    `json:"organization_id"`
    TemplateID     *string   `json:"template_id"`
    Code           string    `json:"code"`
    Name           string    `json:"name"`
    Quota          int       `json:"quota"`
    CreatedAt      time.Time `json:"created_at"`
    StudentsCount  int64     `json:"students_count"`
    AvailableSlots int64     `json:"available_slots"`
}
