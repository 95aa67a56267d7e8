package routes

import (
	"github.com/labstack/echo/v4"

	"admin-system/internal/controllers"
)

func runDepartmentRouter(secureGroup *echo.Group, deptCtrl *controllers.DepartmentController) {
	secureGroup.GET("/depts", deptCtrl.GetDepartments)
	secureGroup.GET("/depts/:id", deptCtrl.FindDepartment)
	secureGroup.POST("/depts", deptCtrl.CreateDepartment)
	secureGroup.PUT("/depts/:id", deptCtrl.UpdateDepartment)
	secureGroup.DELETE("/depts/:id", deptCtrl.DeleteDepartment)
}
