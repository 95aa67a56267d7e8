package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/services"
	"admin-system/pkg/api"
	apperrors "admin-system/pkg/errors"
)

type DepartmentController struct {
	deptService services.DepartmentServiceInterface
	logger      *zap.Logger
}

func NewDepartmentController(deptService services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		deptService: deptService,
		logger:      logger,
	}
}

func (c *DepartmentController) GetDepartments(ctx echo.Context) error {
	depts, err := c.deptService.GetDepartments(ctx.Request().Context())
	if err != nil {
		c.logger.Error("failed to list departments", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.Success(ctx, depts)
}

func (c *DepartmentController) FindDepartment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	dept, err := c.deptService.FindDepartment(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to find department", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, dept)
}

func (c *DepartmentController) CreateDepartment(ctx echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	dept, err := c.deptService.CreateDepartment(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create department", zap.String("name", payload.Name), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Created(ctx, dept)
}

func (c *DepartmentController) UpdateDepartment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	var payload dto.UpdateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	dept, err := c.deptService.UpdateDepartment(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to update department", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, dept)
}

func (c *DepartmentController) DeleteDepartment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.deptService.DeleteDepartment(ctx.Request().Context(), id); err != nil {
		c.logger.Error("failed to delete department", zap.Uint64("id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}
