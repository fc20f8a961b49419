package templates

import (
	"errors"
	"net/http"

	"api/database"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetTemplates lists the global specialty catalog
// @Summary List specialty templates
// @Description Get all catalog templates
// @Tags Templates
// @Produce json
// @Success 200 {array} models.SpecialtyTemplate
// @Failure 401,403 {object} map[string]string
// @Router /admin/templates [get]
// @Security Bearer
func GetTemplates(c *gin.Context) {
    var templates []models.SpecialtyTemplate
    if err := database.DB.Order("code").Find(&templates).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFetchTemplatesFailed)
        return
    }
    c.JSON(http.StatusOK, templates)
}

// CreateTemplate adds a catalog template
// @Summary Create specialty template
// @Description Add a specialty/profession definition to the global catalog
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template"
// @Success 201 {object} models.SpecialtyTemplate
// @Failure 400,409 {object} map[string]string
// @Router /admin/templates [post]
// @Security Bearer
func CreateTemplate(c *gin.Context) {
    var req CreateTemplateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    template, err := services.CreateTemplate(req.Code, req.Name)
    if err != nil {
        if errors.Is(err, services.ErrDuplicateCode) {
            response.Error(c, http.StatusConflict, err.Error())
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrCreateTemplateFailed)
        return
    }
    c.JSON(http.StatusCreated, template)
}

// UpdateTemplate edits a template's code/name and resynchronizes every specialty
// assigned from it
// @Summary Update specialty template
// @Description Edit a template; changes propagate to all assigned specialties
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body UpdateTemplateRequest true "Edits"
// @Success 200 {object} models.SpecialtyTemplate
// @Failure 400,404,409 {object} map[string]string
// @Router /admin/templates/{id} [put]
// @Security Bearer
func UpdateTemplate(c *gin.Context) {
    var req UpdateTemplateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    template, err := services.UpdateTemplate(c.Param("id"), req.Code, req.Name)
    if err != nil {
        switch {
        case errors.Is(err, services.ErrTemplateNotFound):
            response.Error(c, http.StatusNotFound, ErrTemplateNotFound)
        case errors.Is(err, services.ErrDuplicateCode):
            response.Error(c, http.StatusConflict, err.Error())
        default:
            response.Error(c, http.StatusInternalServerError, ErrUpdateTemplateFailed)
        }
        return
    }
    c.JSON(http.StatusOK, template)
}

// DeleteTemplate removes a template and cascades to assigned specialties and students
// @Summary Delete specialty template
// @Description Delete a template; every specialty assigned from it and their students are removed
// @Tags Templates
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/templates/{id} [delete]
// @Security Bearer
func DeleteTemplate(c *gin.Context) {
    if err := services.DeleteTemplate(c.Param("id")); err != nil {
        if errors.Is(err, services.ErrTemplateNotFound) {
            response.Error(c, http.StatusNotFound, ErrTemplateNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrDeleteTemplateFailed)
        return
    }
    c.Status(http.StatusNoContent)
}

// AssignTemplate binds a template to an organization
// @Summary Assign template to organization
// @Description Create a specialty from a catalog template; quota defaults to the base quota setting
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body AssignTemplateRequest true "Assignment"
// @Success 201 {object} models.Specialty
// @Failure 400,404,409 {object} map[string]string
// @Router /admin/templates/{id}/assign [post]
// @Security Bearer
func AssignTemplate(c *gin.Context) {
    var req AssignTemplateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    specialty, err := services.AssignTemplate(c.Param("id"), req.OrganizationID, req.Quota)
    if err != nil {
        switch {
        case errors.Is(err, services.ErrTemplateNotFound), errors.Is(err, services.ErrOrganizationNotFound):
            response.Error(c, http.StatusNotFound, err.Error())
        case errors.Is(err, services.ErrTemplateAlreadyAssigned):
            response.Error(c, http.StatusConflict, err.Error())
        default:
            response.Error(c, http.StatusInternalServerError, ErrAssignTemplateFailed)
        }
        return
    }
    c.JSON(http.StatusCreated, specialty)
}
