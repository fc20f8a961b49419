package operators

import (
	"errors"
	"log"
	"net/http"

	"api/metrics"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetOperators lists all operator accounts
// @Summary List operators
// @Description Get all operator accounts with their organizations
// @Tags Operators
// @Produce json
// @Success 200 {array} models.User
// @Failure 401,403 {object} map[string]string
// @Router /admin/operators [get]
// @Security Bearer
func GetOperators(c *gin.Context) {
    operators, err := services.ListOperators()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFetchOperatorsFailed)
        return
    }
    c.JSON(http.StatusOK, operators)
}

// CreateOperator provisions the operator account for an organization. The generated
// login and password are returned once in the response.
// @Summary Provision operator
// @Description Create an operator for an organization with generated credentials
// @Tags Operators
// @Accept json
// @Produce json
// @Param request body CreateOperatorRequest true "Organization"
// @Success 201 {object} OperatorWithPassword
// @Failure 400,404,409 {object} map[string]string
// @Router /admin/operators [post]
// @Security Bearer
func CreateOperator(c *gin.Context) {
    var req CreateOperatorRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    operator, password, err := services.CreateOperator(req.OrganizationID)
    if err != nil {
        switch {
        case errors.Is(err, services.ErrOrganizationNotFound):
            response.Error(c, http.StatusNotFound, err.Error())
        case errors.Is(err, services.ErrOperatorAlreadyExists):
            response.Error(c, http.StatusConflict, err.Error())
        case errors.Is(err, services.ErrProvisioningFailed):
            log.Printf("Operator provisioning failed for organization %s: %v", req.OrganizationID, err)
            response.Error(c, http.StatusInternalServerError, ErrCreateOperatorFailed)
        default:
            response.Error(c, http.StatusInternalServerError, ErrCreateOperatorFailed)
        }
        return
    }

    metrics.OperatorsProvisioned.Inc()
    c.JSON(http.StatusCreated, OperatorWithPassword{
        ID:                operator.ID,
        Login:             operator.Login,
        Role:              operator.Role,
        OrganizationID:    operator.OrganizationID,
        CreatedAt:         operator.CreatedAt,
        GeneratedPassword: password,
    })
}

// DeleteOperator removes an operator account, freeing the organization's operator slot
// @Summary Delete operator
// @Description Delete an operator account by ID
// @Tags Operators
// @Param id path string true "Operator ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/operators/{id} [delete]
// @Security Bearer
func DeleteOperator(c *gin.Context) {
    if err := services.DeleteOperator(c.Param("id")); err != nil {
        if errors.Is(err, services.ErrOperatorNotFound) {
            response.Error(c, http.StatusNotFound, ErrOperatorNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrDeleteOperatorFailed)
        return
    }
    c.Status(http.StatusNoContent)
}

// ResetPassword generates a new password for an operator
// @Summary Reset operator password
// @Description Generate a new password for an operator; the plaintext is returned once
// @Tags Operators
// @Produce json
// @Param id path string true "Operator ID"
// @Success 200 {object} OperatorWithPassword
// @Failure 404 {object} map[string]string
// @Router /admin/operators/{id}/reset-password [post]
// @Security Bearer
func ResetPassword(c *gin.Context) {
    operator, password, err := services.ResetOperatorPassword(c.Param("id"))
    if err != nil {
        if errors.Is(err, services.ErrOperatorNotFound) {
            response.Error(c, http.StatusNotFound, ErrOperatorNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrResetPasswordFailed)
        return
    }

    c.JSON(http.StatusOK, OperatorWithPassword{
        ID:                operator.ID,
        Login:             operator.Login,
        Role:              operator.Role,
        OrganizationID:    operator.OrganizationID,
        CreatedAt:         operator.CreatedAt,
        GeneratedPassword: password,
    })
}
