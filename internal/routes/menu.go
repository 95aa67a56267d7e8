package routes

import (
	"github.com/labstack/echo/v4"

	"admin-system/internal/controllers"
)

func runMenuRouter(secureGroup *echo.Group, menuCtrl *controllers.MenuController) {
	secureGroup.GET("/menus", menuCtrl.GetMenus)
	secureGroup.GET("/menus/:id", menuCtrl.FindMenu)
	secureGroup.POST("/menus", menuCtrl.CreateMenu)
	secureGroup.PUT("/menus/:id", menuCtrl.UpdateMenu)
	secureGroup.DELETE("/menus/:id", menuCtrl.DeleteMenu)
}
