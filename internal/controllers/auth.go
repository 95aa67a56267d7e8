package controllers

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/services"
	"admin-system/pkg/api"
	"admin-system/pkg/contextkeys"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/middleware"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.authService.Login(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Warn("login failed", zap.String("username", payload.Username), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	c.logger.Info("user logged in", zap.String("username", payload.Username))
	return api.Success(ctx, res)
}

// RefreshToken exchanges a live refresh token for a new pair. The old access
// token, when supplied in the Authorization header, is revoked in the same
// exchange.
func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var payload dto.RefreshTokenDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	res, err := c.authService.RefreshTokens(ctx.Request().Context(), bearerToken(ctx), payload.RefreshToken)
	if err != nil {
		c.logger.Warn("token rotation failed", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, res)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	sub, ok := ctx.Request().Context().Value(contextkeys.SubjectKey).(string)
	if !ok {
		return api.ErrorResponse(ctx, apperrors.NewTokenError("Invalid token"))
	}

	if err := c.authService.Logout(ctx.Request().Context(), sub, bearerToken(ctx)); err != nil {
		c.logger.Error("logout failed", zap.String("sub", sub), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}

func (c *AuthController) Me(ctx echo.Context) error {
	user, ok := middleware.UserFromContext(ctx.Request().Context())
	if !ok {
		return api.ErrorResponse(ctx, apperrors.NewTokenError("Invalid token"))
	}
	return api.Success(ctx, user)
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
