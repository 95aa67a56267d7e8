package services

import (
	"context"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	apperrors "admin-system/pkg/errors"
)

type PolicyServiceInterface interface {
	GetPolicies(ctx context.Context) ([]dto.PolicyDTO, []dto.GroupingPolicyDTO, error)
	AddPolicy(ctx context.Context, payload dto.PolicyDTO) error
	RemovePolicy(ctx context.Context, payload dto.PolicyDTO) error
	AddGroupingPolicy(ctx context.Context, payload dto.GroupingPolicyDTO) error
	RemoveGroupingPolicy(ctx context.Context, payload dto.GroupingPolicyDTO) error
}

// PolicyService manages the policy engine's rule set; changes go through the
// enforcer so they take effect immediately and are persisted by its adapter.
type PolicyService struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewPolicyService(enforcer *casbin.Enforcer, logger *zap.Logger) PolicyServiceInterface {
	return &PolicyService{enforcer: enforcer, logger: logger}
}

func (s *PolicyService) GetPolicies(ctx context.Context) ([]dto.PolicyDTO, []dto.GroupingPolicyDTO, error) {
	rawPolicies, err := s.enforcer.GetPolicy()
	if err != nil {
		return nil, nil, err
	}
	policies := make([]dto.PolicyDTO, 0, len(rawPolicies))
	for _, p := range rawPolicies {
		if len(p) < 3 {
			continue
		}
		policies = append(policies, dto.PolicyDTO{Subject: p[0], Object: p[1], Action: p[2]})
	}

	rawGroups, err := s.enforcer.GetGroupingPolicy()
	if err != nil {
		return nil, nil, err
	}
	groups := make([]dto.GroupingPolicyDTO, 0, len(rawGroups))
	for _, g := range rawGroups {
		if len(g) < 2 {
			continue
		}
		groups = append(groups, dto.GroupingPolicyDTO{Subject: g[0], Role: g[1]})
	}

	return policies, groups, nil
}

func (s *PolicyService) AddPolicy(ctx context.Context, payload dto.PolicyDTO) error {
	added, err := s.enforcer.AddPolicy(payload.Subject, payload.Object, payload.Action)
	if err != nil {
		return err
	}
	if !added {
		return apperrors.NewConflictError("Policy already exists")
	}
	return nil
}

func (s *PolicyService) RemovePolicy(ctx context.Context, payload dto.PolicyDTO) error {
	removed, err := s.enforcer.RemovePolicy(payload.Subject, payload.Object, payload.Action)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NewNotFoundError("Policy not found")
	}
	return nil
}

func (s *PolicyService) AddGroupingPolicy(ctx context.Context, payload dto.GroupingPolicyDTO) error {
	added, err := s.enforcer.AddGroupingPolicy(payload.Subject, payload.Role)
	if err != nil {
		return err
	}
	if !added {
		return apperrors.NewConflictError("Role binding already exists")
	}
	return nil
}

func (s *PolicyService) RemoveGroupingPolicy(ctx context.Context, payload dto.GroupingPolicyDTO) error {
	removed, err := s.enforcer.RemoveGroupingPolicy(payload.Subject, payload.Role)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NewNotFoundError("Role binding not found")
	}
	return nil
}
