package templates

// Error message constants
const (
    ErrTemplateNotFound     = "Specialty template not found"
    ErrFetchTemplatesFailed = "Failed to fetch specialty templates"
    ErrCreateTemplateFailed = "Failed to create specialty template"
    ErrUpdateTemplateFailed = "Failed to update specialty template"
    ErrDeleteTemplateFailed = "Failed to delete specialty template"
    ErrAssignTemplateFailed = "Failed to assign specialty template"
)

// CreateTemplateRequest is the body for adding a catalog template
type CreateTemplateRequest struct {
    Code string `json:"code" binding:"required"`
    Name string `json:"name" binding:"required"`
}

// UpdateTemplateRequest carries optional code/name edits
type UpdateTemplateRequest struct {
    Code *string `json:"code"`
    Name *string `json:"name"`
}

// AssignTemplateRequest binds a template to an organization, optionally overriding the
// base quota
type AssignTemplateRequest struct {
    OrganizationID string `json:"organization_id" binding:"required"`
    Quota          *int   `json:"quota" binding:"omitempty,min=0"`
}
