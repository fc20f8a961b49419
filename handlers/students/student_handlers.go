package students

import (
	"context"
	"errors"
	"log"
	"net/http"

	"api/database"
	"api/handlers/stats"
	"api/metrics"
	"api/middleware"
	"api/realtime"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetStudents lists the students of the operator's organization
// @Summary List students
// @Description Get students of the operator's organization, optionally filtered by specialty
// @Tags Students
// @Produce json
// @Param specialty_id query string false "Specialty ID"
// @Success 200 {array} StudentWithSpecialty
// @Failure 401,403,404 {object} map[string]string
// @Router /students [get]
// @Security Bearer
func GetStudents(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    students, err := services.ListStudents(*user.OrganizationID, c.Query("specialty_id"))
    if err != nil {
        if errors.Is(err, services.ErrSpecialtyNotFound) {
            response.Error(c, http.StatusNotFound, ErrSpecialtyNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFetchStudentsFailed)
        return
    }

    rows := make([]StudentWithSpecialty, 0, len(students))
    for i := range students {
        row := StudentWithSpecialty{
            ID:                students[i].ID,
            SpecialtyID:       students[i].SpecialtyID,
            FullName:          students[i].FullName(),
            CertificateNumber: students[i].CertificateNumber,
            CreatedAt:         students[i].CreatedAt,
        }
        if students[i].Specialty != nil {
            row.SpecialtyName = students[i].Specialty.Name
        }
        rows = append(rows, row)
    }
    c.JSON(http.StatusOK, rows)
}

// AdmitStudent enrolls a student into one of the organization's specialties
// @Summary Admit student
// @Description Admit a student; fails when the quota is full or the certificate number is taken
// @Tags Students
// @Accept json
// @Produce json
// @Param request body AdmitStudentRequest true "Student"
// @Success 201 {object} models.Student
// @Failure 400,404,409 {object} map[string]string
// @Router /students [post]
// @Security Bearer
func AdmitStudent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var req AdmitStudentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    student, err := services.AdmitStudent(*user.OrganizationID, services.AdmitStudentInput{
        SpecialtyID:       req.SpecialtyID,
        FirstName:         req.FirstName,
        LastName:          req.LastName,
        MiddleName:        req.MiddleName,
        CertificateNumber: req.CertificateNumber,
    })
    if err != nil {
        var quotaErr *services.QuotaExceededError
        switch {
        case errors.As(err, &quotaErr):
            metrics.QuotaRejections.Inc()
            response.Error(c, http.StatusBadRequest, quotaErr.Error())
        case errors.Is(err, services.ErrDuplicateCertificate):
            metrics.DuplicateCertificateRejections.Inc()
            response.Error(c, http.StatusConflict, err.Error())
        case errors.Is(err, services.ErrSpecialtyNotFound):
            response.Error(c, http.StatusNotFound, ErrSpecialtyNotFound)
        default:
            log.Printf("Error admitting student: %v", err)
            response.Error(c, http.StatusInternalServerError, ErrAdmitStudentFailed)
        }
        return
    }

    metrics.AdmissionsTotal.Inc()
    notifyAdmission(*user.OrganizationID, student.SpecialtyID, "admitted")
    invalidateStatsCache(c.Request.Context(), *user.OrganizationID)

    c.JSON(http.StatusCreated, student)
}

// DeleteStudent removes a student of the operator's organization
// @Summary Delete student
// @Description Delete a student by ID (only from the operator's organization)
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /students/{id} [delete]
// @Security Bearer
func DeleteStudent(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    if err := services.DeleteStudent(*user.OrganizationID, c.Param("id")); err != nil {
        if errors.Is(err, services.ErrStudentNotFound) {
            response.Error(c, http.StatusNotFound, ErrStudentNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrDeleteStudentFailed)
        return
    }

    notifyAdmission(*user.OrganizationID, "", "removed")
    invalidateStatsCache(c.Request.Context(), *user.OrganizationID)

    c.Status(http.StatusNoContent)
}

func notifyAdmission(organizationID, specialtyID, updateType string) {
    update := realtime.AdmissionUpdate{
        OrganizationID: organizationID,
        SpecialtyID:    specialtyID,
        UpdateType:     updateType,
    }
    if specialtyID != "" {
        if count, err := services.CountStudents(specialtyID); err == nil {
            update.StudentsCount = count
        }
    }
    go realtime.BroadcastAdmissionUpdate(update)
}

func invalidateStatsCache(ctx context.Context, organizationID string) {
    if err := database.REDIS.Del(ctx, stats.OverallStatsCacheKey, stats.OrgStatsCacheKeyPrefix+organizationID).Err(); err != nil {
        log.Printf("Failed to invalidate stats cache: %v", err)
    }
}
