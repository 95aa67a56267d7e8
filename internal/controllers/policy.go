package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/services"
	"admin-system/pkg/api"
	apperrors "admin-system/pkg/errors"
)

type PolicyController struct {
	policyService services.PolicyServiceInterface
	logger        *zap.Logger
}

func NewPolicyController(policyService services.PolicyServiceInterface, logger *zap.Logger) *PolicyController {
	return &PolicyController{
		policyService: policyService,
		logger:        logger,
	}
}

func (c *PolicyController) GetPolicies(ctx echo.Context) error {
	policies, groups, err := c.policyService.GetPolicies(ctx.Request().Context())
	if err != nil {
		c.logger.Error("failed to list policies", zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, echo.Map{
		"policies": policies,
		"groups":   groups,
	})
}

func (c *PolicyController) AddPolicy(ctx echo.Context) error {
	var payload dto.PolicyDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.policyService.AddPolicy(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("failed to add policy", zap.String("subject", payload.Subject), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Created(ctx, payload)
}

func (c *PolicyController) RemovePolicy(ctx echo.Context) error {
	var payload dto.PolicyDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.policyService.RemovePolicy(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("failed to remove policy", zap.String("subject", payload.Subject), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}

func (c *PolicyController) AddGroupingPolicy(ctx echo.Context) error {
	var payload dto.GroupingPolicyDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.policyService.AddGroupingPolicy(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("failed to add role binding", zap.String("subject", payload.Subject), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Created(ctx, payload)
}

func (c *PolicyController) RemoveGroupingPolicy(ctx echo.Context) error {
	var payload dto.GroupingPolicyDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.ErrBadRequest)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if err := c.policyService.RemoveGroupingPolicy(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("failed to remove role binding", zap.String("subject", payload.Subject), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	return api.Success(ctx, nil)
}
