package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/services"
	"admin-system/pkg/api"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/utils"
)

type RoleController struct {
	roleService services.RoleServiceInterface
	logger      *zap.Logger
}

func NewRoleController(roleService services.RoleServiceInterface, logger *zap.Logger) *RoleController {
	return &RoleController{
		roleService: roleService,
		logger:      logger,
	}
}

func (c *RoleController) GetRoles(ctx echo.Context) error {
	filter := utils.ParseListFilter(ctx)

	roles, total, err := c.roleService.GetRoles(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list roles", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.SuccessList(ctx, roles, total, filter.Page, filter.Limit)
}

func (c *RoleController) FindRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	role, err := c.roleService.FindRole(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to find role", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, role)
}

func (c *RoleController) CreateRole(ctx echo.Context) error {
	var payload dto.CreateRoleDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	role, err := c.roleService.CreateRole(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create role", zap.String("name", payload.Name), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Created(ctx, role)
}

func (c *RoleController) UpdateRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateRoleDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	role, err := c.roleService.UpdateRole(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to update role", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, role)
}

func (c *RoleController) DeleteRole(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.roleService.DeleteRole(ctx.Request().Context(), id); err != nil {
		c.logger.Error("failed to delete role", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}

// SetRoleMenus replaces the role's menu assignment wholesale.
func (c *RoleController) SetRoleMenus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.SetRoleMenusDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.roleService.SetRoleMenus(ctx.Request().Context(), id, payload.MenuIDs); err != nil {
		c.logger.Error("failed to set role menus", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}
