package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/entities"
	"admin-system/pkg/api"
	"admin-system/pkg/contextkeys"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/service"
)

// IdentityResolver turns an authenticated subject id into a loaded account.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthMiddleware struct {
	tokenSvc service.TokenService
	identity IdentityResolver
	logger   *zap.Logger
}

func NewAuthMiddleware(tokenSvc service.TokenService, identity IdentityResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		identity: identity,
		logger:   logger,
	}
}

// Auth validates the bearer token, resolves the account behind it and stores
// both in the request context for downstream handlers.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.logger.Warn("empty Authorization header",
				zap.String("path", c.Request().URL.Path))
			return api.ErrorResponse(c, apperrors.NewTokenError("Authorization header is missing"))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("malformed Authorization header",
				zap.String("path", c.Request().URL.Path))
			return api.ErrorResponse(c, apperrors.NewTokenError("Invalid authorization header"))
		}

		sub, err := m.tokenSvc.Authenticate(c.Request().Context(), parts[1])
		if err != nil {
			m.logger.Warn("token authentication failed", zap.Error(err))
			return api.ErrorResponse(c, err)
		}

		// Decode guarantees the subject parses as a positive id.
		userID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return api.ErrorResponse(c, apperrors.NewTokenError("Invalid token"))
		}

		user, err := m.identity.Resolve(c.Request().Context(), userID)
		if err != nil {
			m.logger.Warn("identity resolution failed", zap.Uint64("userID", userID), zap.Error(err))
			return api.ErrorResponse(c, err)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
		ctx = context.WithValue(ctx, contextkeys.SubjectKey, sub)
		ctx = context.WithValue(ctx, contextkeys.UserKey, user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// UserFromContext extracts the account placed there by Auth.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	user, ok := ctx.Value(contextkeys.UserKey).(*entities.User)
	return user, ok
}

// UserIDFromContext extracts the subject id placed there by Auth.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	return id, ok
}
