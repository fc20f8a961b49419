package stats

import "time"

// Constants for error messages and cache policy
const (
    ErrFetchStatsFailed = "Failed to fetch statistics"

    OverallStatsCacheKey   = "stats:overall"
    OrgStatsCacheKeyPrefix = "stats:org:"
    StatsCacheDuration     = 5 * time.Minute
    DatabaseTimeout        = 5 * time.Second
)

// SpecialtyStats is the occupancy of one specialty
type SpecialtyStats struct {
    SpecialtyID      string `json:"specialty_id"`
    SpecialtyName    string `json:"specialty_name"`
    OrganizationID   string `json:"organization_id"`
    OrganizationName string `json:"organization_name"`
    Quota            int    `json:"quota"`
    StudentsCount    int64  `json:"students_count"`
    AvailableSlots   int64  `json:"available_slots"`
}

// OrganizationStats aggregates one organization's specialties
type OrganizationStats struct {
    OrganizationID   string           `json:"organization_id"`
    OrganizationName string           `json:"organization_name"`
    TotalQuota       int              `json:"total_quota"`
    TotalStudents    int64            `json:"total_students"`
    Specialties      []SpecialtyStats `json:"specialties"`
}

// OverallStats is the cross-organization summary
type OverallStats struct {
    TotalOrganizations int                 `json:"total_organizations"`
    TotalSpecialties   int                 `json:"total_specialties"`
    TotalStudents      int64               `json:"total_students"`
    TotalQuota         int                 `json:"total_quota"`
    Organizations      []OrganizationStats `json:"organizations"`
}
