package students

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to students
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
    students := r.Group("/students")
    students.Use(middleware.AuthMiddleware(), middleware.OperatorOnly())
    {
        students.GET("/", GetStudents)
        students.POST("/", AdmitStudent)
        students.DELETE("/:id", DeleteStudent)
        students.GET("/export", ExportStudents)
        students.POST("/import", ImportStudents)
    }
}
