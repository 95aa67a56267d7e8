package authz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/casbin/casbin/v2"

	"admin-system/internal/entities"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

// Input is one authorization question: may this user perform method on path,
// given the permission code (if any) registered for the matched route.
type Input struct {
	User           *entities.User
	Path           string
	Method         string
	PermissionCode string
}

// Authorizer decides allow (nil) or deny (a TokenError or AuthorizationError).
// The implementation is selected once at startup; there is no per-request mode
// branching.
type Authorizer interface {
	Authorize(ctx context.Context, in Input) error
}

// New selects the gate implementation from configuration. An unknown mode is
// a startup failure, never a per-request one.
func New(cfg config.RBACConfig, enforcer *casbin.Enforcer) (Authorizer, error) {
	switch cfg.Mode {
	case config.PermissionModeRoleMenu:
		return &RoleMenuAuthorizer{cfg: cfg}, nil
	case config.PermissionModeCasbin:
		if enforcer == nil {
			return nil, fmt.Errorf("casbin permission mode requires an enforcer")
		}
		return &CasbinAuthorizer{cfg: cfg, enforcer: enforcer}, nil
	default:
		return nil, fmt.Errorf("unknown permission mode %q", cfg.Mode)
	}
}

// precheck runs the gate stages shared by both modes, in contract order.
// decided=true with a nil error means allow without further checks.
func precheck(in Input) (decided bool, err error) {
	if in.User == nil {
		return false, apperrors.NewTokenError("Invalid token")
	}
	if in.User.IsSuperuser {
		return true, nil
	}
	if len(in.User.Roles) == 0 {
		return false, apperrors.NewAuthorizationError("User has not been assigned a role, authorization failed")
	}

	hasMenus := false
	for _, role := range in.User.Roles {
		if len(role.Menus) > 0 {
			hasMenus = true
			break
		}
	}
	if !hasMenus {
		return false, apperrors.NewAuthorizationError("User's roles have not been assigned menus, authorization failed")
	}

	if in.Method != http.MethodGet && in.Method != http.MethodOptions && !in.User.IsStaff {
		return false, apperrors.NewAuthorizationError("This user is prohibited from backend management operations")
	}

	for _, role := range in.User.Roles {
		if role.DataScope == entities.DataScopeAll {
			return true, nil
		}
	}
	return false, nil
}
