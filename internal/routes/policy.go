package routes

import (
	"github.com/labstack/echo/v4"

	"admin-system/internal/controllers"
)

func runPolicyRouter(secureGroup *echo.Group, policyCtrl *controllers.PolicyController) {
	secureGroup.GET("/policies", policyCtrl.GetPolicies)
	secureGroup.POST("/policies", policyCtrl.AddPolicy)
	secureGroup.DELETE("/policies", policyCtrl.RemovePolicy)
	secureGroup.POST("/policies/groups", policyCtrl.AddGroupingPolicy)
	secureGroup.DELETE("/policies/groups", policyCtrl.RemoveGroupingPolicy)
}
