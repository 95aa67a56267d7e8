package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"admin-system/internal/dto"
	"admin-system/internal/repositories"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/service"
	"admin-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context, sub, accessToken string) error
	RefreshTokens(ctx context.Context, accessToken, refreshToken string) (*dto.NewTokenResponseDTO, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	tokenSvc  service.TokenService
	tokenCfg  config.TokenConfig
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	tokenSvc service.TokenService,
	tokenCfg config.TokenConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		tokenSvc:  tokenSvc,
		tokenCfg:  tokenCfg,
		logger:    logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("Incorrect username or password")
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		return nil, apperrors.NewBadRequestError("Incorrect username or password")
	}

	if !user.Enabled() {
		return nil, apperrors.NewAuthorizationError("User has been locked, please contact the system administrator")
	}

	sub := strconv.FormatUint(user.ID, 10)
	accessToken, accessExpiresAt, err := s.tokenSvc.IssueAccessToken(ctx, sub, s.tokenCfg.MultiLogin)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiresAt, err := s.tokenSvc.IssueRefreshToken(ctx, sub, s.tokenCfg.MultiLogin)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLoginTime(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last login time", zap.Uint64("userID", user.ID), zap.Error(err))
	}

	return &dto.LoginResponseDTO{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		User:             user,
	}, nil
}

// Logout revokes the presented access token; with single-session enforcement
// the whole refresh namespace of the subject is dropped too.
func (s *AuthService) Logout(ctx context.Context, sub, accessToken string) error {
	accessKey := fmt.Sprintf("%s:%s:%s", s.tokenCfg.AccessPrefix, sub, accessToken)
	if err := s.cacheRepo.Del(ctx, accessKey); err != nil {
		return err
	}
	if !s.tokenCfg.MultiLogin {
		refreshPrefix := fmt.Sprintf("%s:%s", s.tokenCfg.RefreshPrefix, sub)
		if err := s.cacheRepo.DeletePrefix(ctx, refreshPrefix); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) RefreshTokens(ctx context.Context, accessToken, refreshToken string) (*dto.NewTokenResponseDTO, error) {
	sub, err := s.tokenSvc.Decode(refreshToken)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokenSvc.RotateTokens(ctx, sub, accessToken, refreshToken, s.tokenCfg.MultiLogin)
	if err != nil {
		return nil, err
	}

	return &dto.NewTokenResponseDTO{
		AccessToken:      pair.AccessToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshToken:     pair.RefreshToken,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}, nil
}
