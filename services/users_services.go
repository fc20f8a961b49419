package services

import (
	"errors"
	"fmt"
	"log"

	"api/database"
	"api/models"
	"api/utils"

	"gorm.io/gorm"
)

// maxLoginAttempts bounds the suffix loop when the transliterated login keeps
// colliding with concurrently provisioned accounts
const maxLoginAttempts = 20

// CreateOperator provisions the single operator account for an organization. The login
// is derived from the organization name by transliteration with an incrementing numeric
// suffix on collision; the password is machine-generated and returned exactly once,
// only its bcrypt hash is stored. A concurrent insert claiming the same login surfaces
// as a unique violation and moves the loop to the next suffix instead of failing.
func CreateOperator(organizationID string) (*models.User, string, error) {
    var organization models.Organization
    if err := database.DB.First(&organization, "id = ?", organizationID).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, "", ErrOrganizationNotFound
        }
        return nil, "", err
    }

    var existing int64
    if err := database.DB.Model(&models.User{}).
        Where("organization_id = ? AND role = ?", organizationID, models.RoleOperator).
        Count(&existing).Error; err != nil {
        return nil, "", err
    }
    if existing > 0 {
        return nil, "", ErrOperatorAlreadyExists
    }

    password, err := utils.GeneratePassword(utils.GeneratedPasswordLength)
    if err != nil {
        return nil, "", err
    }
    hashed, err := utils.HashPassword(password)
    if err != nil {
        return nil, "", err
    }

    base := utils.TransliterateLogin(organization.Name)
    for attempt := 0; attempt < maxLoginAttempts; attempt++ {
        login := base
        if attempt > 0 {
            login = fmt.Sprintf("%s_%d", base, attempt)
        }

        var taken int64
        if err := database.DB.Model(&models.User{}).
            Where("login = ?", login).
            Count(&taken).Error; err != nil {
            return nil, "", err
        }
        if taken > 0 {
            continue
        }

        user := models.User{
            Login:          login,
            PasswordHash:   hashed,
            Role:           models.RoleOperator,
            OrganizationID: &organization.ID,
        }
        err := database.DB.Create(&user).Error
        if err == nil {
            return &user, password, nil
        }
        if isUniqueViolation(err, "uq_users_operator_organization") {
            // Another request provisioned the operator while we were generating
            return nil, "", ErrOperatorAlreadyExists
        }
        if isUniqueViolation(err, "") {
            // Login raced with a concurrent insert, retry with the next suffix
            continue
        }
        return nil, "", err
    }

    log.Printf("login suffix budget exhausted for organization %s (base %q)", organizationID, base)
    return nil, "", ErrProvisioningFailed
}

// ResetOperatorPassword generates a fresh password for an operator, stores its hash and
// returns the plaintext once
func ResetOperatorPassword(operatorID string) (*models.User, string, error) {
    var operator models.User
    if err := database.DB.
        Where("id = ? AND role = ?", operatorID, models.RoleOperator).
        First(&operator).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, "", ErrOperatorNotFound
        }
        return nil, "", err
    }

    password, err := utils.GeneratePassword(utils.GeneratedPasswordLength)
    if err != nil {
        return nil, "", err
    }
    hashed, err := utils.HashPassword(password)
    if err != nil {
        return nil, "", err
    }

    operator.PasswordHash = hashed
    if err := database.DB.Save(&operator).Error; err != nil {
        return nil, "", err
    }
    return &operator, password, nil
}

// DeleteOperator removes an operator account, freeing its organization's operator slot
func DeleteOperator(operatorID string) error {
    result := database.DB.
        Where("id = ? AND role = ?", operatorID, models.RoleOperator).
        Delete(&models.User{})
    if result.Error != nil {
        return result.Error
    }
    if result.RowsAffected == 0 {
        return ErrOperatorNotFound
    }
    return nil
}

// ListOperators returns every operator account with its organization preloaded
func ListOperators() ([]models.User, error) {
    var operators []models.User
    err := database.DB.Preload("Organization").
        Where("role = ?", models.RoleOperator).
        Order("created_at").
        Find(&operators).Error
    return operators, err
}

// Authenticate resolves a login/password pair to a user, or nil when the credentials
// do not match
func Authenticate(login, password string) (*models.User, error) {
    var user models.User
    if err := database.DB.Preload("Organization").Where("login = ?", login).First(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, nil
        }
        return nil, err
    }
    if !utils.CheckPassword(password, user.PasswordHash) {
        return nil, nil
    }
    return &user, nil
}

// GetUserByID loads a user with its organization preloaded
func GetUserByID(userID string) (*models.User, error) {
    var user models.User
    if err := database.DB.Preload("Organization").First(&user, "id = ?", userID).Error; err != nil {
        return nil, err
    }
    return &user, nil
}
