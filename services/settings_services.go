package services

import (
	"errors"
	"strconv"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

const baseQuotaKey = "base_quota"

// GetBaseQuota returns the organization-wide default quota applied when a template is
// assigned without an explicit quota. Falls back to the built-in default when the
// setting row is absent.
func GetBaseQuota() (int, error) {
    return getBaseQuotaTx(database.DB)
}

func getBaseQuotaTx(tx *gorm.DB) (int, error) {
    var setting models.Setting
    if err := tx.Where("key = ?", baseQuotaKey).First(&setting).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return database.DefaultBaseQuota, nil
        }
        return 0, err
    }

    value, err := strconv.Atoi(setting.Value)
    if err != nil {
        return database.DefaultBaseQuota, nil
    }
    return value, nil
}

// SetBaseQuota stores a new default quota value
func SetBaseQuota(value int) error {
    var setting models.Setting
    err := database.DB.Where("key = ?", baseQuotaKey).First(&setting).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return database.DB.Create(&models.Setting{Key: baseQuotaKey, Value: strconv.Itoa(value)}).Error
    }
    if err != nil {
        return err
    }

    setting.Value = strconv.Itoa(value)
    return database.DB.Save(&setting).Error
}
