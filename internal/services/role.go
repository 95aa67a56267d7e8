package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/entities"
	"admin-system/internal/repositories"
	"admin-system/pkg/types"
)

type RoleServiceInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindRole(ctx context.Context, id uint64) (*entities.Role, error)
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*entities.Role, error)
	UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*entities.Role, error)
	DeleteRole(ctx context.Context, id uint64) error
	SetRoleMenus(ctx context.Context, id uint64, menuIDs []uint64) error
}

type RoleService struct {
	roleRepo repositories.RoleRepositoryInterface
	logger   *zap.Logger
}

func NewRoleService(roleRepo repositories.RoleRepositoryInterface, logger *zap.Logger) RoleServiceInterface {
	return &RoleService{roleRepo: roleRepo, logger: logger}
}

func (s *RoleService) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	return s.roleRepo.GetRoles(ctx, filter)
}

func (s *RoleService) FindRole(ctx context.Context, id uint64) (*entities.Role, error) {
	return s.roleRepo.FindRoleByID(ctx, id)
}

func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*entities.Role, error) {
	role := &entities.Role{
		Name:      payload.Name,
		DataScope: payload.DataScope,
		Status:    payload.Status,
		Remark:    null.StringFromPtr(payload.Remark),
	}
	return s.roleRepo.CreateRole(ctx, role)
}

func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*entities.Role, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		role.Name = *payload.Name
	}
	if payload.DataScope != nil {
		role.DataScope = *payload.DataScope
	}
	if payload.Status != nil {
		role.Status = *payload.Status
	}
	if payload.Remark != nil {
		role.Remark = null.StringFrom(*payload.Remark)
	}

	if err := s.roleRepo.UpdateRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) error {
	return s.roleRepo.DeleteRole(ctx, id)
}

func (s *RoleService) SetRoleMenus(ctx context.Context, id uint64, menuIDs []uint64) error {
	if _, err := s.roleRepo.FindRoleByID(ctx, id); err != nil {
		return err
	}
	if err := s.roleRepo.SetRoleMenus(ctx, id, menuIDs); err != nil {
		return err
	}
	s.logger.Info("role menus updated", zap.Uint64("roleID", id), zap.Int("menus", len(menuIDs)))
	return nil
}
