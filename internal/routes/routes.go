package routes

import (
	"github.com/casbin/casbin/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/authz"
	"admin-system/internal/controllers"
	"admin-system/internal/repositories"
	"admin-system/internal/services"
	"admin-system/pkg/config"
	"admin-system/pkg/middleware"
	"admin-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers every
// route under /api/v1. The token and policy plumbing is constructed by the
// caller so the permission mode is fixed before the first request.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	tokenSvc service.TokenService,
	enforcer *casbin.Enforcer,
	authorizer authz.Authorizer,
	cfg *config.Config,
	logger *zap.Logger,
) {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)
	menuRepo := repositories.NewMenuRepository(dbConn, logger)
	deptRepo := repositories.NewDepartmentRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	identitySvc := services.NewIdentityService(userRepo, logger)
	authSvc := services.NewAuthService(userRepo, cacheRepo, tokenSvc, cfg.Token, logger)
	userSvc := services.NewUserService(userRepo, logger)
	roleSvc := services.NewRoleService(roleRepo, logger)
	menuSvc := services.NewMenuService(menuRepo, logger)
	deptSvc := services.NewDepartmentService(deptRepo, logger)
	policySvc := services.NewPolicyService(enforcer, logger)

	authCtrl := controllers.NewAuthController(authSvc, logger)
	userCtrl := controllers.NewUserController(userSvc, logger)
	roleCtrl := controllers.NewRoleController(roleSvc, logger)
	menuCtrl := controllers.NewMenuController(menuSvc, logger)
	deptCtrl := controllers.NewDepartmentController(deptSvc, logger)
	policyCtrl := controllers.NewPolicyController(policySvc, logger)

	authMW := middleware.NewAuthMiddleware(tokenSvc, identitySvc, logger)
	rbacMW := middleware.NewRBACMiddleware(authorizer, cfg.RBAC, PermissionCode, logger)

	api := e.Group("/api/v1")
	secureGroup := api.Group("", authMW.Auth, rbacMW.Gate)

	runAuthRouter(api, secureGroup, authCtrl)
	runUserRouter(secureGroup, userCtrl)
	runRoleRouter(secureGroup, roleCtrl)
	runMenuRouter(secureGroup, menuCtrl)
	runDepartmentRouter(secureGroup, deptCtrl)
	runPolicyRouter(secureGroup, policyCtrl)

	logger.Info("router initialized", zap.String("permissionMode", cfg.RBAC.Mode))
}
