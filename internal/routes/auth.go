package routes

import (
	"github.com/labstack/echo/v4"

	"admin-system/internal/controllers"
)

func runAuthRouter(public *echo.Group, secureGroup *echo.Group, authCtrl *controllers.AuthController) {
	// Login and rotation must work without a live access token.
	public.POST("/auth/login", authCtrl.Login)
	public.POST("/auth/token/new", authCtrl.RefreshToken)

	secureGroup.GET("/auth/me", authCtrl.Me)
	secureGroup.POST("/auth/logout", authCtrl.Logout)
}
