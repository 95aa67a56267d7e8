package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"admin-system/internal/entities"
	"admin-system/internal/repositories"
	apperrors "admin-system/pkg/errors"
)

type IdentityServiceInterface interface {
	Resolve(ctx context.Context, userID uint64) (*entities.User, error)
}

// IdentityService turns an authenticated subject id into a usable account,
// applying the account-state checks in contract order. Reordering them
// changes the observable error precedence, so the order is part of the API.
type IdentityService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewIdentityService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) IdentityServiceInterface {
	return &IdentityService{userRepo: userRepo, logger: logger}
}

func (s *IdentityService) Resolve(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserWithRelations(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewTokenError("Invalid token")
		}
		return nil, err
	}

	if !user.Enabled() {
		return nil, apperrors.NewAuthorizationError("User has been locked, please contact the system administrator")
	}

	// Absent department or roles skip the respective checks.
	if user.DeptID != nil && user.Dept != nil {
		if !user.Dept.Enabled() {
			return nil, apperrors.NewAuthorizationError("User's department has been locked")
		}
		if user.Dept.DelFlag {
			return nil, apperrors.NewAuthorizationError("User's department has been deleted")
		}
	}

	if len(user.Roles) > 0 {
		allDisabled := true
		for _, role := range user.Roles {
			if role.Enabled() {
				allDisabled = false
				break
			}
		}
		if allDisabled {
			return nil, apperrors.NewAuthorizationError("User's roles have been locked")
		}
	}

	return user, nil
}
