package models

import "time"

// Organization represents an educational organization offering specialty programs
type Organization struct {
    ID          string       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name        string       `gorm:"type:varchar(255);not null" json:"name"`
    CreatedAt   time.Time    `json:"created_at"`
    Specialties []*Specialty `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"specialties,omitempty"`
    Operators   []*User      `gorm:"foreignKey:OrganizationID" json:"operators,omitempty"`
}
