package students

import "time"

// Error message constants
const (
    ErrStudentNotFound       = "Student not found or does not belong to your organization"
    ErrSpecialtyNotFound     = "Specialty not found or does not belong to your organization"
    ErrFetchStudentsFailed   = "Failed to fetch students"
    ErrAdmitStudentFailed    = "Failed to admit student"
    ErrDeleteStudentFailed   = "Failed to delete student"
    ErrExportStudentsFailed  = "Failed to export students"
    ErrParseWorkbookFailed   = "Failed to parse XLSX file"
)

// AdmitStudentRequest carries the candidate enrollment fields
type AdmitStudentRequest struct {
    SpecialtyID       string `json:"specialty_id" binding:"required"`
    FirstName         string `json:"first_name" binding:"required"`
    LastName          string `json:"last_name" binding:"required"`
    MiddleName        string `json:"middle_name"`
    CertificateNumber string `json:"certificate_number" binding:"required"`
}

// StudentWithSpecialty is a student row enriched for listing
type StudentWithSpecialty struct {
    ID                string    `json:"id"`
    SpecialtyID       string    `json:"specialty_id"`
    FullName          string    `json:"full_name"`
    CertificateNumber string    `json:"certificate_number"`
    CreatedAt         time.Time `json:"created_at"`
    SpecialtyName     string    `json:"specialty_name"`
}

// ImportRowResult reports the outcome of one imported workbook row
type ImportRowResult struct {
    Row     int    `json:"row"`
    Status  string `json:"status"` // "admitted" or "rejected"
    Message string `json:"message,omitempty"`
}
