package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/entities"
	"admin-system/internal/repositories"
)

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context) ([]entities.Department, error)
	FindDepartment(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	deptRepo repositories.DepartmentRepositoryInterface
	logger   *zap.Logger
}

func NewDepartmentService(deptRepo repositories.DepartmentRepositoryInterface, logger *zap.Logger) DepartmentServiceInterface {
	return &DepartmentService{deptRepo: deptRepo, logger: logger}
}

func (s *DepartmentService) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	return s.deptRepo.GetDepartments(ctx)
}

func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	return s.deptRepo.FindDepartmentByID(ctx, id)
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	dept := &entities.Department{
		Name:   payload.Name,
		Leader: null.StringFromPtr(payload.Leader),
		Phone:  null.StringFromPtr(payload.Phone),
		Email:  null.StringFromPtr(payload.Email),
		Status: payload.Status,
	}
	return s.deptRepo.CreateDepartment(ctx, dept)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	dept, err := s.deptRepo.FindDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		dept.Name = *payload.Name
	}
	if payload.Leader != nil {
		dept.Leader = null.StringFrom(*payload.Leader)
	}
	if payload.Phone != nil {
		dept.Phone = null.StringFrom(*payload.Phone)
	}
	if payload.Email != nil {
		dept.Email = null.StringFrom(*payload.Email)
	}
	if payload.Status != nil {
		dept.Status = *payload.Status
	}

	if err := s.deptRepo.UpdateDepartment(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	return s.deptRepo.DeleteDepartment(ctx, id)
}
