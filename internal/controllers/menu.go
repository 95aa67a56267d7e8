package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/services"
	"admin-system/pkg/api"
	apperrors "admin-system/pkg/errors"
)

type MenuController struct {
	menuService services.MenuServiceInterface
	logger      *zap.Logger
}

func NewMenuController(menuService services.MenuServiceInterface, logger *zap.Logger) *MenuController {
	return &MenuController{
		menuService: menuService,
		logger:      logger,
	}
}

func (c *MenuController) GetMenus(ctx echo.Context) error {
	menus, err := c.menuService.GetMenus(ctx.Request().Context())
	if err != nil {
		c.logger.Error("failed to list menus", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.Success(ctx, menus)
}

func (c *MenuController) FindMenu(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	menu, err := c.menuService.FindMenu(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to find menu", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, menu)
}

func (c *MenuController) CreateMenu(ctx echo.Context) error {
	var payload dto.CreateMenuDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	menu, err := c.menuService.CreateMenu(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create menu", zap.String("title", payload.Title), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Created(ctx, menu)
}

func (c *MenuController) UpdateMenu(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateMenuDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	menu, err := c.menuService.UpdateMenu(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to update menu", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, menu)
}

func (c *MenuController) DeleteMenu(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.menuService.DeleteMenu(ctx.Request().Context(), id); err != nil {
		c.logger.Error("failed to delete menu", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}
