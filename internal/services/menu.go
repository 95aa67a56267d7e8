package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/entities"
	"admin-system/internal/repositories"
)

type MenuServiceInterface interface {
	GetMenus(ctx context.Context) ([]entities.Menu, error)
	FindMenu(ctx context.Context, id uint64) (*entities.Menu, error)
	CreateMenu(ctx context.Context, payload dto.CreateMenuDTO) (*entities.Menu, error)
	UpdateMenu(ctx context.Context, id uint64, payload dto.UpdateMenuDTO) (*entities.Menu, error)
	DeleteMenu(ctx context.Context, id uint64) error
}

type MenuService struct {
	menuRepo repositories.MenuRepositoryInterface
	logger   *zap.Logger
}

func NewMenuService(menuRepo repositories.MenuRepositoryInterface, logger *zap.Logger) MenuServiceInterface {
	return &MenuService{menuRepo: menuRepo, logger: logger}
}

func (s *MenuService) GetMenus(ctx context.Context) ([]entities.Menu, error) {
	return s.menuRepo.GetMenus(ctx)
}

func (s *MenuService) FindMenu(ctx context.Context, id uint64) (*entities.Menu, error) {
	return s.menuRepo.FindMenuByID(ctx, id)
}

func (s *MenuService) CreateMenu(ctx context.Context, payload dto.CreateMenuDTO) (*entities.Menu, error) {
	menu := &entities.Menu{
		Title:    payload.Title,
		Name:     payload.Name,
		Path:     null.StringFromPtr(payload.Path),
		ParentID: payload.ParentID,
		Sort:     payload.Sort,
		Status:   payload.Status,
		Perms:    null.StringFromPtr(payload.Perms),
		Remark:   null.StringFromPtr(payload.Remark),
	}
	return s.menuRepo.CreateMenu(ctx, menu)
}

func (s *MenuService) UpdateMenu(ctx context.Context, id uint64, payload dto.UpdateMenuDTO) (*entities.Menu, error) {
	menu, err := s.menuRepo.FindMenuByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Title != nil {
		menu.Title = *payload.Title
	}
	if payload.Name != nil {
		menu.Name = *payload.Name
	}
	if payload.Path != nil {
		menu.Path = null.StringFrom(*payload.Path)
	}
	if payload.ParentID != nil {
		menu.ParentID = payload.ParentID
	}
	if payload.Sort != nil {
		menu.Sort = *payload.Sort
	}
	if payload.Status != nil {
		menu.Status = *payload.Status
	}
	if payload.Perms != nil {
		menu.Perms = null.StringFrom(*payload.Perms)
	}
	if payload.Remark != nil {
		menu.Remark = null.StringFrom(*payload.Remark)
	}

	if err := s.menuRepo.UpdateMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) DeleteMenu(ctx context.Context, id uint64) error {
	return s.menuRepo.DeleteMenu(ctx, id)
}
