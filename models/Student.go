package models

import "time"

// Student represents a student enrolled into a specialty. The certificate number is
// unique across the whole system, not per organization.
type Student struct {
    ID                string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    SpecialtyID       string     `gorm:"type:uuid;not null;index;column:specialty_id" json:"specialty_id"`
    FirstName         string     `gorm:"type:varchar(100);not null;column:first_name" json:"first_name"`
    LastName          string     `gorm:"type:varchar(100);not null;column:last_name" json:"last_name"`
    MiddleName        string     `gorm:"type:varchar(100);column:middle_name" json:"middle_name"`
    CertificateNumber string     `gorm:"type:varchar(50);unique;not null;column:certificate_number" json:"certificate_number"`
    CreatedAt         time.Time  `json:"created_at"`
    Specialty         *Specialty `gorm:"foreignKey:SpecialtyID;constraint:OnDelete:CASCADE" json:"specialty,omitempty"`
}

// FullName returns "last first [middle]"
func (s *Student) FullName() string {
    name := s.LastName + " " + s.FirstName
    if s.MiddleName != "" {
        name += " " + s.MiddleName
    }
    return name
}
