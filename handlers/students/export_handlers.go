package students

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportStudents streams the organization's roster as an XLSX workbook
// @Summary Export students
// @Description Download the students of the operator's organization as an XLSX file
// @Tags Students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 401,403 {object} map[string]string
// @Router /students/export [get]
// @Security Bearer
func ExportStudents(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    students, err := services.ListStudents(*user.OrganizationID, "")
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrExportStudentsFailed)
        return
    }

    workbook := excelize.NewFile()
    defer workbook.Close()

    sheet := workbook.GetSheetName(0)
    headers := []string{"Full name", "Certificate number", "Specialty", "Enrolled at"}
    for i, header := range headers {
        cell, _ := excelize.CoordinatesToCellName(i+1, 1)
        workbook.SetCellValue(sheet, cell, header)
    }

    for i := range students {
        rowIndex := i + 2
        specialtyName := ""
        if students[i].Specialty != nil {
            specialtyName = students[i].Specialty.Name
        }
        values := []interface{}{
            students[i].FullName(),
            students[i].CertificateNumber,
            specialtyName,
            students[i].CreatedAt.Format("2006-01-02 15:04"),
        }
        for j, value := range values {
            cell, _ := excelize.CoordinatesToCellName(j+1, rowIndex)
            workbook.SetCellValue(sheet, cell, value)
        }
    }

    c.Header("Content-Disposition", `attachment; filename="students.xlsx"`)
    c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
    if err := workbook.Write(c.Writer); err != nil {
        response.Error(c, http.StatusInternalServerError, ErrExportStudentsFailed)
    }
}

// ImportStudents admits students in bulk from an uploaded XLSX workbook. Columns:
// specialty ID, last name, first name, middle name (optional), certificate number.
// Every row goes through the regular admission protocol, so quota and certificate
// guards apply row by row.
// @Summary Import students
// @Description Bulk-admit students from an XLSX file; each row reports its own outcome
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX workbook"
// @Success 200 {array} ImportRowResult
// @Failure 400 {object} map[string]string
// @Router /students/import [post]
// @Security Bearer
func ImportStudents(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    file, err := c.FormFile("file")
    if err != nil {
        response.Error(c, http.StatusBadRequest, "Missing file upload")
        return
    }

    opened, err := file.Open()
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrParseWorkbookFailed)
        return
    }
    defer opened.Close()

    workbook, err := excelize.OpenReader(opened)
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrParseWorkbookFailed)
        return
    }
    defer workbook.Close()

    rows, err := workbook.GetRows(workbook.GetSheetName(0))
    if err != nil {
        response.Error(c, http.StatusBadRequest, ErrParseWorkbookFailed)
        return
    }

    results := make([]ImportRowResult, 0, len(rows))
    for i, row := range rows {
        if i == 0 {
            continue // header row
        }
        if len(row) < 5 || row[0] == "" {
            results = append(results, ImportRowResult{Row: i + 1, Status: "rejected", Message: "incomplete row"})
            continue
        }

        middleName := ""
        if len(row) > 3 {
            middleName = row[3]
        }
        _, err := services.AdmitStudent(*user.OrganizationID, services.AdmitStudentInput{
            SpecialtyID:       row[0],
            LastName:          row[1],
            FirstName:         row[2],
            MiddleName:        middleName,
            CertificateNumber: row[4],
        })
        if err != nil {
            results = append(results, ImportRowResult{Row: i + 1, Status: "rejected", Message: err.Error()})
            continue
        }
        results = append(results, ImportRowResult{Row: i + 1, Status: "admitted"})
    }

    invalidateStatsCache(c.Request.Context(), *user.OrganizationID)
    c.JSON(http.StatusOK, results)
}
