package organizations

import (
	"errors"
	"log"
	"net/http"

	"api/database"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrganizations lists all organizations with aggregate statistics
// @Summary List organizations
// @Description Get all organizations with specialty, student and operator counts
// @Tags Organizations
// @Produce json
// @Success 200 {array} OrganizationWithStats
// @Failure 401,403 {object} map[string]string
// @Router /admin/organizations [get]
// @Security Bearer
func GetOrganizations(c *gin.Context) {
    var rows []OrganizationWithStats

    // Aggregated subqueries instead of per-organization count queries
    err := database.DB.Model(&models.Organization{}).
        Select(`organizations.id, organizations.name, organizations.created_at,
            (SELECT COUNT(*) FROM specialties WHERE specialties.organization_id = organizations.id) AS specialties_count,
            (SELECT COUNT(*) FROM students JOIN specialties s ON s.id = students.specialty_id WHERE s.organization_id = organizations.id) AS students_count,
            (SELECT COUNT(*) FROM users WHERE users.organization_id = organizations.id AND users.role = 'operator') AS operators_count`).
        Order("organizations.created_at").
        Scan(&rows).Error
    if err != nil {
        log.Printf("Error fetching organizations: %v", err)
        response.Error(c, http.StatusInternalServerError, ErrFetchOrganizationsFailed)
        return
    }

    c.JSON(http.StatusOK, rows)
}

// GetOrganization returns one organization with statistics
// @Summary Get organization
// @Description Get an organization by ID with aggregate counts
// @Tags Organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} OrganizationWithStats
// @Failure 404 {object} map[string]string
// @Router /admin/organizations/{id} [get]
// @Security Bearer
func GetOrganization(c *gin.Context) {
    id := c.Param("id")

    var organization models.Organization
    if err := database.DB.First(&organization, "id = ?", id).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            response.Error(c, http.StatusNotFound, ErrOrganizationNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFetchOrganizationsFailed)
        return
    }

    row := OrganizationWithStats{
        ID:        organization.ID,
        Name:      organization.Name,
        CreatedAt: organization.CreatedAt,
    }
    database.DB.Model(&models.Specialty{}).Where("organization_id = ?", id).Count(&row.SpecialtiesCount)
    database.DB.Model(&models.Student{}).
        Joins("JOIN specialties ON specialties.id = students.specialty_id").
        Where("specialties.organization_id = ?", id).
        Count(&row.StudentsCount)
    database.DB.Model(&models.User{}).
        Where("organization_id = ? AND role = ?", id, models.RoleOperator).
        Count(&row.OperatorsCount)

    c.JSON(http.StatusOK, row)
}

// CreateOrganization creates a new organization
// @Summary Create organization
// @Description Create a new educational organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body CreateOrganizationRequest true "Organization"
// @Success 201 {object} models.Organization
// @Failure 400 {object} map[string]string
// @Router /admin/organizations [post]
// @Security Bearer
func CreateOrganization(c *gin.Context) {
    var req CreateOrganizationRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    organization := models.Organization{Name: req.Name}
    if err := database.DB.Create(&organization).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrCreateOrganizationFailed)
        return
    }
    c.JSON(http.StatusCreated, organization)
}

// UpdateOrganization renames an organization
// @Summary Update organization
// @Description Rename an organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body CreateOrganizationRequest true "Organization"
// @Success 200 {object} models.Organization
// @Failure 400,404 {object} map[string]string
// @Router /admin/organizations/{id} [put]
// @Security Bearer
func UpdateOrganization(c *gin.Context) {
    id := c.Param("id")

    var req CreateOrganizationRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var organization models.Organization
    if err := database.DB.First(&organization, "id = ?", id).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            response.Error(c, http.StatusNotFound, ErrOrganizationNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFetchOrganizationsFailed)
        return
    }

    organization.Name = req.Name
    if err := database.DB.Save(&organization).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrUpdateOrganizationFailed)
        return
    }
    c.JSON(http.StatusOK, organization)
}

// DeleteOrganization removes an organization. The database cascades the delete to its
// specialties and their students; operator accounts are detached, not deleted.
// @Summary Delete organization
// @Description Delete an organization with all its specialties and students
// @Tags Organizations
// @Param id path string true "Organization ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/organizations/{id} [delete]
// @Security Bearer
func DeleteOrganization(c *gin.Context) {
    id := c.Param("id")

    result := database.DB.Delete(&models.Organization{}, "id = ?", id)
    if result.Error != nil {
        response.Error(c, http.StatusInternalServerError, ErrDeleteOrganizationFailed)
        return
    }
    if result.RowsAffected == 0 {
        response.Error(c, http.StatusNotFound, ErrOrganizationNotFound)
        return
    }
    c.Status(http.StatusNoContent)
}
