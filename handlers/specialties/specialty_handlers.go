package specialties

import (
	"errors"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetSpecialties lists the operator's specialties with occupancy
// @Summary List specialties
// @Description Get the specialties of the operator's organization with student counts
// @Tags Specialties
// @Produce json
// @Success 200 {array} SpecialtyWithStats
// @Failure 401,403 {object} map[string]string
// @Router /specialties [get]
// @Security Bearer
func GetSpecialties(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var rows []SpecialtyWithStats
    err = database.DB.Model(&models.Specialty{}).
        Select(`specialties.id, specialties.organization_id, specialties.template_id,
            specialties.code, specialties.name, specialties.quota, specialties.created_at,
            (SELECT COUNT(*) FROM students WHERE students.specialty_id = specialties.id) AS students_count,
            GREATEST(specialties.quota - (SELECT COUNT(*) FROM students WHERE students.specialty_id = specialties.id), 0) AS available_slots`).
        Where("specialties.organization_id = ?", *user.OrganizationID).
        Order("specialties.created_at").
        Scan(&rows).Error
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFetchSpecialtiesFailed)
        return
    }

    c.JSON(http.StatusOK, rows)
}

// CreateSpecialty creates a template-less specialty for the operator's organization.
// Kept for organizations whose programs predate the catalog; the quota comes from the
// base quota setting.
// @Summary Create specialty
// @Description Create a specialty by name in the operator's organization
// @Tags Specialties
// @Accept json
// @Produce json
// @Param request body CreateSpecialtyRequest true "Specialty"
// @Success 201 {object} models.Specialty
// @Failure 400 {object} map[string]string
// @Router /specialties [post]
// @Security Bearer
func CreateSpecialty(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var req CreateSpecialtyRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    specialty, err := services.CreateSpecialty(*user.OrganizationID, req.Name)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrCreateSpecialtyFailed)
        return
    }
    c.JSON(http.StatusCreated, specialty)
}

// DeleteSpecialty removes a specialty of the operator's organization; enrolled
// students are removed with it
// @Summary Delete specialty
// @Description Delete a specialty by ID (only from the operator's organization)
// @Tags Specialties
// @Param id path string true "Specialty ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /specialties/{id} [delete]
// @Security Bearer
func DeleteSpecialty(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    if err := services.DeleteSpecialty(*user.OrganizationID, c.Param("id")); err != nil {
        if errors.Is(err, services.ErrSpecialtyNotFound) {
            response.Error(c, http.StatusNotFound, ErrSpecialtyNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrDeleteSpecialtyFailed)
        return
    }
    c.Status(http.StatusNoContent)
}

// UpdateQuota sets a specialty's quota. Lowering below the current student count is
// accepted; admissions stay blocked until attrition frees capacity.
// @Summary Update specialty quota
// @Description Set the quota of a specialty
// @Tags Specialties
// @Accept json
// @Produce json
// @Param id path string true "Specialty ID"
// @Param request body QuotaUpdateRequest true "Quota"
// @Success 200 {object} models.Specialty
// @Failure 400,404 {object} map[string]string
// @Router /admin/specialties/{id}/quota [put]
// @Security Bearer
func UpdateQuota(c *gin.Context) {
    var req QuotaUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    specialty, err := services.SetSpecialtyQuota(c.Param("id"), *req.Quota)
    if err != nil {
        if errors.Is(err, services.ErrSpecialtyNotFound) {
            response.Error(c, http.StatusNotFound, ErrSpecialtyNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrUpdateQuotaFailed)
        return
    }
    c.JSON(http.StatusOK, specialty)
}
