package authz

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-system/internal/entities"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

const testSubjectUUID = "22222222-2222-2222-2222-222222222222"

func casbinConfig() config.RBACConfig {
	return config.RBACConfig{
		Mode: config.PermissionModeCasbin,
		CasbinExclude: []config.MethodPath{
			{Method: http.MethodPost, Path: "/api/v1/auth/logout"},
		},
	}
}

// casbinUser passes every precheck stage without short-circuiting, so the
// decision lands in the policy engine.
func casbinUser() *entities.User {
	return &entities.User{
		ID:      7,
		UUID:    testSubjectUUID,
		Status:  entities.StatusEnabled,
		IsStaff: true,
		Roles: []entities.Role{
			{
				ID:        1,
				Name:      "ops",
				DataScope: 2,
				Status:    entities.StatusEnabled,
				Menus:     []entities.Menu{{ID: 1, Title: "Users", Name: "SysUser", Status: entities.StatusEnabled}},
			},
		},
	}
}

func newTestAuthorizer(t *testing.T) Authorizer {
	t.Helper()

	enforcer, err := NewEnforcer(nil)
	require.NoError(t, err)

	_, err = enforcer.AddPolicy("r_ops", "/api/v1/users/*", http.MethodGet)
	require.NoError(t, err)
	_, err = enforcer.AddGroupingPolicy(testSubjectUUID, "r_ops")
	require.NoError(t, err)

	a, err := New(casbinConfig(), enforcer)
	require.NoError(t, err)
	return a
}

func TestCasbinAllowsMatchingRule(t *testing.T) {
	a := newTestAuthorizer(t)

	err := a.Authorize(context.Background(), Input{
		User: casbinUser(), Method: http.MethodGet, Path: "/api/v1/users/42",
	})
	assert.NoError(t, err)
}

func TestCasbinDeniesWrongMethod(t *testing.T) {
	a := newTestAuthorizer(t)

	err := a.Authorize(context.Background(), Input{
		User: casbinUser(), Method: http.MethodPost, Path: "/api/v1/users/42",
	})
	var authzErr *apperrors.AuthorizationError
	require.ErrorAs(t, err, &authzErr)
	assert.Equal(t, "Permission denied", authzErr.Msg)
}

func TestCasbinDeniesUnboundSubject(t *testing.T) {
	a := newTestAuthorizer(t)

	stranger := casbinUser()
	stranger.UUID = "33333333-3333-3333-3333-333333333333"
	err := a.Authorize(context.Background(), Input{
		User: stranger, Method: http.MethodGet, Path: "/api/v1/users/42",
	})
	var authzErr *apperrors.AuthorizationError
	assert.ErrorAs(t, err, &authzErr)
}

func TestCasbinWildcardAction(t *testing.T) {
	enforcer, err := NewEnforcer(nil)
	require.NoError(t, err)
	_, err = enforcer.AddPolicy("r_ops", "/api/v1/roles/*", "*")
	require.NoError(t, err)
	_, err = enforcer.AddGroupingPolicy(testSubjectUUID, "r_ops")
	require.NoError(t, err)

	a, err := New(casbinConfig(), enforcer)
	require.NoError(t, err)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		err := a.Authorize(context.Background(), Input{
			User: casbinUser(), Method: method, Path: "/api/v1/roles/5",
		})
		assert.NoError(t, err, method)
	}
}

func TestCasbinPathParameterMatch(t *testing.T) {
	enforcer, err := NewEnforcer(nil)
	require.NoError(t, err)
	_, err = enforcer.AddPolicy("r_ops", "/api/v1/users/{id}", http.MethodGet)
	require.NoError(t, err)
	_, err = enforcer.AddGroupingPolicy(testSubjectUUID, "r_ops")
	require.NoError(t, err)

	a, err := New(casbinConfig(), enforcer)
	require.NoError(t, err)

	err = a.Authorize(context.Background(), Input{
		User: casbinUser(), Method: http.MethodGet, Path: "/api/v1/users/42",
	})
	assert.NoError(t, err)
}

func TestCasbinExcludedMethodPath(t *testing.T) {
	a := newTestAuthorizer(t)

	err := a.Authorize(context.Background(), Input{
		User: casbinUser(), Method: http.MethodPost, Path: "/api/v1/auth/logout",
	})
	assert.NoError(t, err)
}

func TestCasbinSuperuserSkipsEngine(t *testing.T) {
	a := newTestAuthorizer(t)

	super := &entities.User{ID: 1, UUID: "no-binding", IsSuperuser: true}
	err := a.Authorize(context.Background(), Input{
		User: super, Method: http.MethodDelete, Path: "/api/v1/depts/9",
	})
	assert.NoError(t, err)
}
