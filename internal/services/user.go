package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/entities"
	"admin-system/internal/repositories"
	"admin-system/pkg/types"
	"admin-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
	ExportUsers(ctx context.Context, filter types.Filter) (*excelize.File, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return s.userRepo.GetUsers(ctx, filter)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepo.FindUserWithRelations(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		UUID:        uuid.NewString(),
		Username:    payload.Username,
		Nickname:    payload.Nickname,
		Password:    hashed,
		Email:       null.StringFromPtr(payload.Email),
		Phone:       null.StringFromPtr(payload.Phone),
		Status:      entities.StatusEnabled,
		IsSuperuser: payload.IsSuperuser,
		IsStaff:     payload.IsStaff,
		DeptID:      payload.DeptID,
	}

	created, err := s.userRepo.CreateUser(ctx, user, payload.RoleIDs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Uint64("userID", created.ID), zap.String("username", created.Username))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Nickname != nil {
		user.Nickname = *payload.Nickname
	}
	if payload.Email != nil {
		user.Email = null.StringFrom(*payload.Email)
	}
	if payload.Phone != nil {
		user.Phone = null.StringFrom(*payload.Phone)
	}
	if payload.Avatar != nil {
		user.Avatar = null.StringFrom(*payload.Avatar)
	}
	if payload.Status != nil {
		user.Status = *payload.Status
	}
	if payload.DeptID != nil {
		user.DeptID = payload.DeptID
	}
	if payload.IsSuperuser != nil {
		user.IsSuperuser = *payload.IsSuperuser
	}
	if payload.IsStaff != nil {
		user.IsStaff = *payload.IsStaff
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	if payload.RoleIDs != nil {
		if err := s.userRepo.SetUserRoles(ctx, id, payload.RoleIDs); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindUserWithRelations(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	return s.userRepo.DeleteUser(ctx, id)
}

var userExportHeader = []string{"ID", "Username", "Nickname", "Email", "Phone", "Status", "Superuser", "Staff", "Last login"}

// ExportUsers renders the filtered user list as an xlsx workbook.
func (s *UserService) ExportUsers(ctx context.Context, filter types.Filter) (*excelize.File, error) {
	filter.WithPagination = false
	users, _, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Users"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range userExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, user := range users {
		lastLogin := ""
		if user.LastLoginTime != nil {
			lastLogin = user.LastLoginTime.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{
			user.ID, user.Username, user.Nickname, user.Email.String, user.Phone.String,
			user.Status, user.IsSuperuser, user.IsStaff, lastLogin,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info("users exported", zap.Int("count", len(users)))
	return f, nil
}
