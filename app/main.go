package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"admin-system/internal/authz"
	"admin-system/internal/repositories"
	"admin-system/internal/routes"
	"admin-system/pkg/api"
	"admin-system/pkg/config"
	"admin-system/pkg/database/postgresql"
	apperrors "admin-system/pkg/errors"
	applogger "admin-system/pkg/logger"
	"admin-system/pkg/middleware"
	"admin-system/pkg/service"
	"admin-system/pkg/utils"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator(validator.New())

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				api.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err))
			}
			return err
		},
	}))
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
		Burst: cfg.RateLimit.Burst,
	})))

	ctx := context.Background()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	dbConn, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	tokenSvc, err := service.NewTokenService(cfg.Token, cacheRepo, logger)
	if err != nil {
		logger.Fatal("failed to build token service", zap.Error(err))
	}

	enforcer, err := authz.NewEnforcer(repositories.NewCasbinRuleRepository(dbConn))
	if err != nil {
		logger.Fatal("failed to build policy enforcer", zap.Error(err))
	}

	// The gate implementation is fixed here; an unknown mode never reaches
	// request handling.
	authorizer, err := authz.New(cfg.RBAC, enforcer)
	if err != nil {
		logger.Fatal("failed to build authorizer", zap.Error(err))
	}

	routes.InitRouter(e, dbConn, redisClient, tokenSvc, enforcer, authorizer, cfg, logger)

	logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("permissionMode", cfg.RBAC.Mode))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
