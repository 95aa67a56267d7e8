package authz

import (
	"context"
	"net/http"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-system/internal/entities"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

func roleMenuConfig() config.RBACConfig {
	return config.RBACConfig{
		Mode:            config.PermissionModeRoleMenu,
		RoleMenuExclude: []string{"sys:monitor:redis"},
	}
}

// staffUser has one enabled role with one enabled menu carrying the given
// permission codes.
func staffUser(perms string) *entities.User {
	return &entities.User{
		ID:      7,
		UUID:    "11111111-1111-1111-1111-111111111111",
		Status:  entities.StatusEnabled,
		IsStaff: true,
		Roles: []entities.Role{
			{
				ID:        1,
				Name:      "ops",
				DataScope: 2,
				Status:    entities.StatusEnabled,
				Menus: []entities.Menu{
					{
						ID:     1,
						Title:  "Users",
						Name:   "SysUser",
						Status: entities.StatusEnabled,
						Perms:  null.StringFrom(perms),
					},
				},
			},
		},
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := New(config.RBACConfig{Mode: "acl"}, nil)
	assert.Error(t, err)
}

func TestNewCasbinModeRequiresEnforcer(t *testing.T) {
	_, err := New(config.RBACConfig{Mode: config.PermissionModeCasbin}, nil)
	assert.Error(t, err)
}

func TestRoleMenuNilUser(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	err = a.Authorize(context.Background(), Input{Method: http.MethodGet, Path: "/api/v1/users"})
	var tokenErr *apperrors.TokenError
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "Invalid token", tokenErr.Msg)
}

func TestRoleMenuSuperuserBypassesEverything(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	user := &entities.User{ID: 1, IsSuperuser: true}
	err = a.Authorize(context.Background(), Input{
		User: user, Method: http.MethodDelete, Path: "/api/v1/users/2", PermissionCode: "sys:user:del",
	})
	assert.NoError(t, err)
}

func TestRoleMenuPrecheckOrder(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	noRoles := &entities.User{ID: 7, IsStaff: true}
	err = a.Authorize(ctx, Input{User: noRoles, Method: http.MethodGet, Path: "/api/v1/users"})
	var authzErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "User has not been assigned a role, authorization failed", authzErr.Msg)

	noMenus := &entities.User{ID: 7, IsStaff: true, Roles: []entities.Role{{ID: 1, Status: entities.StatusEnabled}}}
	err = a.Authorize(ctx, Input{User: noMenus, Method: http.MethodGet, Path: "/api/v1/users"})
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "User's roles have not been assigned menus, authorization failed", authzErr.Msg)

	nonStaff := staffUser("sys:user:list")
	nonStaff.IsStaff = false
	err = a.Authorize(ctx, Input{User: nonStaff, Method: http.MethodPost, Path: "/api/v1/users", PermissionCode: "sys:user:add"})
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "This user is prohibited from backend management operations", authzErr.Msg)

	// Reads stay open to non-staff users.
	err = a.Authorize(ctx, Input{User: nonStaff, Method: http.MethodGet, Path: "/api/v1/users", PermissionCode: "sys:user:list"})
	assert.NoError(t, err)
}

func TestRoleMenuDataScopeAllShortCircuits(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	user := staffUser("sys:user:list")
	user.Roles[0].DataScope = entities.DataScopeAll
	err = a.Authorize(context.Background(), Input{
		User: user, Method: http.MethodDelete, Path: "/api/v1/users/2", PermissionCode: "sys:user:del",
	})
	assert.NoError(t, err)
}

func TestRoleMenuPermissionCodeMatch(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)
	ctx := context.Background()
	user := staffUser("sys:user:list,sys:user:get")

	err = a.Authorize(ctx, Input{User: user, Method: http.MethodGet, Path: "/api/v1/users", PermissionCode: "sys:user:list"})
	assert.NoError(t, err)

	err = a.Authorize(ctx, Input{User: user, Method: http.MethodGet, Path: "/api/v1/users/2", PermissionCode: "sys:user:del"})
	var authzErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "Permission denied", authzErr.Msg)
}

func TestRoleMenuDisabledMenuDoesNotGrant(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	user := staffUser("sys:user:list")
	user.Roles[0].Menus[0].Status = entities.StatusDisabled
	err = a.Authorize(context.Background(), Input{
		User: user, Method: http.MethodGet, Path: "/api/v1/users", PermissionCode: "sys:user:list",
	})
	var authzErr *apperrors.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
}

func TestRoleMenuExcludedCode(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	user := staffUser("sys:user:list")
	err = a.Authorize(context.Background(), Input{
		User: user, Method: http.MethodGet, Path: "/api/v1/monitor/redis", PermissionCode: "sys:monitor:redis",
	})
	assert.NoError(t, err)
}

func TestRoleMenuRouteWithoutCode(t *testing.T) {
	a, err := New(roleMenuConfig(), nil)
	require.NoError(t, err)

	user := staffUser("sys:user:list")
	err = a.Authorize(context.Background(), Input{
		User: user, Method: http.MethodGet, Path: "/api/v1/auth/me",
	})
	assert.NoError(t, err)
}
