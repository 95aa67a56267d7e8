package authz

import (
	"context"

	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

// RoleMenuAuthorizer grants access when the permission code registered for
// the route is carried by an enabled menu of one of the user's roles.
type RoleMenuAuthorizer struct {
	cfg config.RBACConfig
}

func (a *RoleMenuAuthorizer) Authorize(ctx context.Context, in Input) error {
	decided, err := precheck(in)
	if err != nil {
		return err
	}
	if decided {
		return nil
	}

	// Routes without a registered code carry no fine-grained requirement.
	if in.PermissionCode == "" {
		return nil
	}
	if a.cfg.IsCodeExcluded(in.PermissionCode) {
		return nil
	}

	for _, role := range in.User.Roles {
		for _, menu := range role.Menus {
			if !menu.Enabled() {
				continue
			}
			for _, code := range menu.PermCodes() {
				if code == in.PermissionCode {
					return nil
				}
			}
		}
	}
	return apperrors.NewAuthorizationError("Permission denied")
}
