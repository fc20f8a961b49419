package models

import "time"

// SpecialtyTemplate represents a canonical specialty/profession definition in the global
// catalog, independent of any organization
type SpecialtyTemplate struct {
    ID          string       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Code        string       `gorm:"type:varchar(50);unique;not null" json:"code"`
    Name        string       `gorm:"type:varchar(255);not null" json:"name"`
    CreatedAt   time.Time    `json:"created_at"`
    Specialties []*Specialty `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"specialties,omitempty"`
}
