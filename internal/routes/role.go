package routes

import (
	"github.com/labstack/echo/v4"

	"admin-system/internal/controllers"
)

func runRoleRouter(secureGroup *echo.Group, roleCtrl *controllers.RoleController) {
	secureGroup.GET("/roles", roleCtrl.GetRoles)
	secureGroup.GET("/roles/:id", roleCtrl.FindRole)
	secureGroup.POST("/roles", roleCtrl.CreateRole)
	secureGroup.PUT("/roles/:id", roleCtrl.UpdateRole)
	secureGroup.PUT("/roles/:id/menus", roleCtrl.SetRoleMenus)
	secureGroup.DELETE("/roles/:id", roleCtrl.DeleteRole)
}
