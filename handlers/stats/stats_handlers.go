package stats

import (
	"context"
	"log"
	"net/http"

	"api/database"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetStats returns quota/enrollment statistics. Admins see every organization,
// operators only their own. Results are served cache-aside from Redis and invalidated
// by the admission and deletion handlers.
// @Summary Get statistics
// @Description Get quota and enrollment statistics scoped to the caller's role
// @Tags Statistics
// @Produce json
// @Success 200 {object} OverallStats
// @Failure 401 {object} map[string]string
// @Router /stats [get]
// @Security Bearer
func GetStats(c *gin.Context) {
    ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
    defer cancel()

    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    cacheKey := OverallStatsCacheKey
    organizationFilter := ""
    if !user.IsAdmin() {
        if user.OrganizationID == nil {
            c.JSON(http.StatusOK, OverallStats{Organizations: []OrganizationStats{}})
            return
        }
        organizationFilter = *user.OrganizationID
        cacheKey = OrgStatsCacheKeyPrefix + organizationFilter
    }

    // Try the cache first
    cached, err := database.REDIS.Get(ctx, cacheKey).Result()
    if err == nil && cached != "" {
        var stats OverallStats
        if err := utils.UnmarshalJSON([]byte(cached), &stats); err == nil {
            metrics.CacheHits.Inc()
            c.JSON(http.StatusOK, stats)
            return
        }
    }
    metrics.CacheMisses.Inc()

    stats, err := collectStats(ctx, organizationFilter)
    if err != nil {
        log.Printf("Error collecting statistics: %v", err)
        response.Error(c, http.StatusInternalServerError, ErrFetchStatsFailed)
        return
    }

    if payload, err := utils.MarshalJSON(stats); err == nil {
        if err := database.REDIS.Set(ctx, cacheKey, string(payload), StatsCacheDuration).Err(); err != nil {
            log.Printf("Failed to cache statistics: %v", err)
        }
    }

    c.JSON(http.StatusOK, stats)
}

func collectStats(ctx context.Context, organizationID string) (*OverallStats, error) {
    query := database.DB.WithContext(ctx).Model(&models.Organization{}).Order("organizations.created_at")
    if organizationID != "" {
        query = query.Where("organizations.id = ?", organizationID)
    }

    var organizations []models.Organization
    if err := query.Find(&organizations).Error; err != nil {
        return nil, err
    }

    overall := OverallStats{Organizations: make([]OrganizationStats, 0, len(organizations))}
    overall.TotalOrganizations = len(organizations)

    for i := range organizations {
        var rows []SpecialtyStats
        err := database.DB.WithContext(ctx).Model(&models.Specialty{}).
            Select(`specialties.id AS specialty_id, specialties.name AS specialty_name,
                specialties.organization_id, ? AS organization_name, specialties.quota,
                (SELECT COUNT(*) FROM students WHERE students.specialty_id = specialties.id) AS students_count,
                GREATEST(specialties.quota - (SELECT COUNT(*) FROM students WHERE students.specialty_id = specialties.id), 0) AS available_slots`,
                organizations[i].Name).
            Where("specialties.organization_id = ?", organizations[i].ID).
            Order("specialties.created_at").
            Scan(&rows).Error
        if err != nil {
            return nil, err
        }

        orgStats := OrganizationStats{
            OrganizationID:   organizations[i].ID,
            OrganizationName: organizations[i].Name,
            Specialties:      rows,
        }
        for j := range rows {
            orgStats.TotalQuota += rows[j].Quota
            orgStats.TotalStudents += rows[j].StudentsCount
        }

        overall.Organizations = append(overall.Organizations, orgStats)
        overall.TotalSpecialties += len(rows)
        overall.TotalStudents += orgStats.TotalStudents
        overall.TotalQuota += orgStats.TotalQuota
    }

    return &overall, nil
}
