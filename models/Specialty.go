package models

import "time"

// Specialty represents a template assigned to an organization with a local quota.
// Code and Name are denormalized copies of the template's fields taken at assignment
// time and resynchronized on every template edit. TemplateID is nullable for legacy
// specialties created before the catalog existed.
type Specialty struct {
    ID             string             `gorm:"type:uuid;default:gen_random_uuid();primary_key;column:id" json:"id"`
    OrganizationID string             `gorm:"type:uuid;not null;index;column:organization_id;uniqueIndex:uq_specialty_org_template" json:"organization_id"`
    TemplateID     *string            `gorm:"type:uuid;index;column:template_id;uniqueIndex:uq_specialty_org_template" json:"template_id"`
    Code           string             `gorm:"type:varchar(50)" json:"code"`
    Name           string             `gorm:"type:varchar(255);not null" json:"name"`
    Quota          int                `gorm:"type:integer;not null;default:25" json:"quota"`
    CreatedAt      time.Time          `json:"created_at"`
    Organization   *Organization      `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
    Template       *SpecialtyTemplate `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"template,omitempty"`
    Students       []*Student         `gorm:"foreignKey:SpecialtyID;constraint:OnDelete:CASCADE" json:"students,omitempty"`
}
