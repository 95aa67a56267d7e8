package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"admin-system/internal/authz"
	"admin-system/pkg/api"
	"admin-system/pkg/config"
)

// PermissionCodeFunc resolves the permission code registered for a matched
// route, or "" when the route carries none.
type PermissionCodeFunc func(method, routePath string) string

type RBACMiddleware struct {
	authorizer authz.Authorizer
	cfg        config.RBACConfig
	permCode   PermissionCodeFunc
	logger     *zap.Logger
}

func NewRBACMiddleware(authorizer authz.Authorizer, cfg config.RBACConfig, permCode PermissionCodeFunc, logger *zap.Logger) *RBACMiddleware {
	return &RBACMiddleware{
		authorizer: authorizer,
		cfg:        cfg,
		permCode:   permCode,
		logger:     logger,
	}
}

// Gate runs the permission check for the request. It expects Auth to have run
// first; a missing account in the context is treated as an invalid token.
func (m *RBACMiddleware) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if m.cfg.IsPathExcluded(path) {
			return next(c)
		}

		user, _ := UserFromContext(c.Request().Context())
		in := authz.Input{
			User:           user,
			Path:           path,
			Method:         c.Request().Method,
			PermissionCode: m.permCode(c.Request().Method, c.Path()),
		}

		if err := m.authorizer.Authorize(c.Request().Context(), in); err != nil {
			m.logger.Warn("authorization denied",
				zap.String("method", in.Method),
				zap.String("path", in.Path),
				zap.String("permissionCode", in.PermissionCode),
				zap.Error(err),
			)
			return api.ErrorResponse(c, err)
		}

		return next(c)
	}
}
