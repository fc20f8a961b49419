package services

import (
	"errors"

	"api/database"
	"api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdmitStudentInput carries the candidate enrollment fields
type AdmitStudentInput struct {
    SpecialtyID       string
    FirstName         string
    LastName          string
    MiddleName        string
    CertificateNumber string
}

// AdmitStudent enrolls a student into a specialty of the given organization. The whole
// protocol runs in one transaction: the specialty row is locked FOR UPDATE so that
// concurrent admissions against the same specialty serialize, then the current student
// count is compared against the quota and the certificate number is checked for global
// uniqueness before the insert. A plain check-then-insert without the row lock can
// overshoot the quota when two admissions race.
func AdmitStudent(organizationID string, input AdmitStudentInput) (*models.Student, error) {
    var student models.Student

    err := database.DB.Transaction(func(tx *gorm.DB) error {
        var specialty models.Specialty
        if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
            Where("id = ? AND organization_id = ?", input.SpecialtyID, organizationID).
            First(&specialty).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrSpecialtyNotFound
            }
            return err
        }

        var count int64
        if err := tx.Model(&models.Student{}).
            Where("specialty_id = ?", specialty.ID).
            Count(&count).Error; err != nil {
            return err
        }
        if count >= int64(specialty.Quota) {
            return &QuotaExceededError{Current: int(count), Quota: specialty.Quota}
        }

        var existing int64
        if err := tx.Model(&models.Student{}).
            Where("certificate_number = ?", input.CertificateNumber).
            Count(&existing).Error; err != nil {
            return err
        }
        if existing > 0 {
            return ErrDuplicateCertificate
        }

        student = models.Student{
            SpecialtyID:       specialty.ID,
            FirstName:         input.FirstName,
            LastName:          input.LastName,
            MiddleName:        input.MiddleName,
            CertificateNumber: input.CertificateNumber,
        }
        if err := tx.Create(&student).Error; err != nil {
            // The unique index on certificate_number backstops the application check
            if isUniqueViolation(err, "") {
                return ErrDuplicateCertificate
            }
            return err
        }
        return nil
    })
    if err != nil {
        return nil, err
    }
    return &student, nil
}

// DeleteStudent removes a student belonging to one of the organization's specialties
func DeleteStudent(organizationID, studentID string) error {
    result := database.DB.
        Where("id = ? AND specialty_id IN (?)", studentID,
            database.DB.Model(&models.Specialty{}).Select("id").Where("organization_id = ?", organizationID)).
        Delete(&models.Student{})
    if result.Error != nil {
        return result.Error
    }
    if result.RowsAffected == 0 {
        return ErrStudentNotFound
    }
    return nil
}

// ListStudents returns the students of the organization, optionally filtered by
// specialty. The specialty filter fails with ErrSpecialtyNotFound when the specialty
// does not exist or belongs to another organization.
func ListStudents(organizationID string, specialtyID string) ([]models.Student, error) {
    query := database.DB.Preload("Specialty").
        Joins("JOIN specialties ON specialties.id = students.specialty_id").
        Where("specialties.organization_id = ?", organizationID)

    if specialtyID != "" {
        var specialty models.Specialty
        if err := database.DB.
            Where("id = ? AND organization_id = ?", specialtyID, organizationID).
            First(&specialty).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return nil, ErrSpecialtyNotFound
            }
            return nil, err
        }
        query = query.Where("students.specialty_id = ?", specialtyID)
    }

    var students []models.Student
    if err := query.Order("students.created_at").Find(&students).Error; err != nil {
        return nil, err
    }
    return students, nil
}
