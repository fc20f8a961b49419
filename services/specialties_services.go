package services

import (
	"errors"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// AssignTemplate binds a catalog template to an organization, creating a specialty
// that carries a denormalized copy of the template's code and name. When quota is nil
// the organization-wide base quota setting is used. A template can be assigned to a
// given organization at most once.
func AssignTemplate(templateID, organizationID string, quota *int) (*models.Specialty, error) {
    var specialty models.Specialty

    err := database.DB.Transaction(func(tx *gorm.DB) error {
        var template models.SpecialtyTemplate
        if err := tx.First(&template, "id = ?", templateID).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrTemplateNotFound
            }
            return err
        }

        var organization models.Organization
        if err := tx.First(&organization, "id = ?", organizationID).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrOrganizationNotFound
            }
            return err
        }

        var existing int64
        if err := tx.Model(&models.Specialty{}).
            Where("organization_id = ? AND template_id = ?", organizationID, templateID).
            Count(&existing).Error; err != nil {
            return err
        }
        if existing > 0 {
            return ErrTemplateAlreadyAssigned
        }

        resolvedQuota := 0
        if quota != nil {
            resolvedQuota = *quota
        } else {
            baseQuota, err := getBaseQuotaTx(tx)
            if err != nil {
                return err
            }
            resolvedQuota = baseQuota
        }

        specialty = models.Specialty{
            OrganizationID: organizationID,
            TemplateID:     &template.ID,
            Code:           template.Code,
            Name:           template.Name,
            Quota:          resolvedQuota,
        }
        if err := tx.Create(&specialty).Error; err != nil {
            if isUniqueViolation(err, "uq_specialty_org_template") {
                return ErrTemplateAlreadyAssigned
            }
            return err
        }
        return nil
    })
    if err != nil {
        return nil, err
    }
    return &specialty, nil
}

// UpdateTemplate edits a catalog template and propagates the new code/name to every
// specialty assigned from it within the same transaction, so the denormalized copies
// never drift from the template of record.
func UpdateTemplate(templateID string, code, name *string) (*models.SpecialtyTemplate, error) {
    var template models.SpecialtyTemplate

    err := database.DB.Transaction(func(tx *gorm.DB) error {
        if err := tx.First(&template, "id = ?", templateID).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrTemplateNotFound
            }
            return err
        }

        if code != nil && *code != template.Code {
            var collision int64
            if err := tx.Model(&models.SpecialtyTemplate{}).
                Where("code = ? AND id <> ?", *code, templateID).
                Count(&collision).Error; err != nil {
                return err
            }
            if collision > 0 {
                return ErrDuplicateCode
            }
            template.Code = *code
        }
        if name != nil {
            template.Name = *name
        }

        if err := tx.Save(&template).Error; err != nil {
            if isUniqueViolation(err, "") {
                return ErrDuplicateCode
            }
            return err
        }

        return tx.Model(&models.Specialty{}).
            Where("template_id = ?", templateID).
            Updates(map[string]interface{}{"code": template.Code, "name": template.Name}).Error
    })
    if err != nil {
        return nil, err
    }
    return &template, nil
}

// CreateTemplate adds a new catalog template with a globally unique code
func CreateTemplate(code, name string) (*models.SpecialtyTemplate, error) {
    template := models.SpecialtyTemplate{Code: code, Name: name}
    if err := database.DB.Create(&template).Error; err != nil {
        if isUniqueViolation(err, "") {
            return nil, ErrDuplicateCode
        }
        return nil, err
    }
    return &template, nil
}

// DeleteTemplate removes a template; the database cascades the delete to every
// specialty assigned from it and transitively to their students
func DeleteTemplate(templateID string) error {
    result := database.DB.Delete(&models.SpecialtyTemplate{}, "id = ?", templateID)
    if result.Error != nil {
        return result.Error
    }
    if result.RowsAffected == 0 {
        return ErrTemplateNotFound
    }
    return nil
}

// CreateSpecialty creates a template-less specialty for an organization. This is the
// legacy path kept for specialties predating the catalog; quota comes from the base
// quota setting.
func CreateSpecialty(organizationID, name string) (*models.Specialty, error) {
    baseQuota, err := GetBaseQuota()
    if err != nil {
        return nil, err
    }

    specialty := models.Specialty{
        OrganizationID: organizationID,
        Name:           name,
        Quota:          baseQuota,
    }
    if err := database.DB.Create(&specialty).Error; err != nil {
        return nil, err
    }
    return &specialty, nil
}

// DeleteSpecialty removes a specialty of the given organization; students cascade
func DeleteSpecialty(organizationID, specialtyID string) error {
    result := database.DB.
        Where("id = ? AND organization_id = ?", specialtyID, organizationID).
        Delete(&models.Specialty{})
    if result.Error != nil {
        return result.Error
    }
    if result.RowsAffected == 0 {
        return ErrSpecialtyNotFound
    }
    return nil
}

// SetSpecialtyQuota updates a specialty's quota. Lowering the quota below the current
// student count is accepted: enrolled students stay, further admissions are blocked
// until attrition frees capacity.
func SetSpecialtyQuota(specialtyID string, quota int) (*models.Specialty, error) {
    var specialty models.Specialty
    if err := database.DB.First(&specialty, "id = ?", specialtyID).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrSpecialtyNotFound
        }
        return nil, err
    }

    specialty.Quota = quota
    if err := database.DB.Save(&specialty).Error; err != nil {
        return nil, err
    }
    return &specialty, nil
}

// CountStudents returns the number of students enrolled in a specialty
func CountStudents(specialtyID string) (int64, error) {
    var count int64
    err := database.DB.Model(&models.Student{}).
        Where("specialty_id = ?", specialtyID).
        Count(&count).Error
    return count, err
}
