package settings

import (
	"net/http"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Error message constants
const (
    ErrFetchSettingsFailed  = "Failed to fetch settings"
    ErrUpdateSettingsFailed = "Failed to update settings"
)

// SettingsResponse exposes the configurable defaults
type SettingsResponse struct {
    BaseQuota int `json:"base_quota"`
}

// UpdateSettingsRequest carries a new base quota value
type UpdateSettingsRequest struct {
    BaseQuota *int `json:"base_quota" binding:"required,min=0"`
}

// GetSettings returns the application settings
// @Summary Get settings
// @Description Get the base quota applied to newly assigned specialties
// @Tags Settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Failure 401,403 {object} map[string]string
// @Router /admin/settings [get]
// @Security Bearer
func GetSettings(c *gin.Context) {
    baseQuota, err := services.GetBaseQuota()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFetchSettingsFailed)
        return
    }
    c.JSON(http.StatusOK, SettingsResponse{BaseQuota: baseQuota})
}

// UpdateSettings stores a new base quota
// @Summary Update settings
// @Description Set the base quota applied to newly assigned specialties
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} map[string]string
// @Router /admin/settings [put]
// @Security Bearer
func UpdateSettings(c *gin.Context) {
    var req UpdateSettingsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    if err := services.SetBaseQuota(*req.BaseQuota); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrUpdateSettingsFailed)
        return
    }
    c.JSON(http.StatusOK, SettingsResponse{BaseQuota: *req.BaseQuota})
}
