package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionCode(t *testing.T) {
	assert.Equal(t, "sys:user:list", PermissionCode(http.MethodGet, "/api/v1/users"))
	assert.Equal(t, "sys:user:del", PermissionCode(http.MethodDelete, "/api/v1/users/:id"))
	assert.Equal(t, "sys:role:menu:edit", PermissionCode(http.MethodPut, "/api/v1/roles/:id/menus"))

	// Routes without a registered code resolve to "".
	assert.Equal(t, "", PermissionCode(http.MethodGet, "/api/v1/auth/me"))
	assert.Equal(t, "", PermissionCode(http.MethodPost, "/api/v1/auth/login"))
}

func TestPermissionCodesAreUnique(t *testing.T) {
	seen := make(map[string]string, len(routePermissions))
	for route, code := range routePermissions {
		if prev, ok := seen[code]; ok {
			t.Fatalf("permission code %q registered for both %q and %q", code, prev, route)
		}
		seen[code] = route
	}
	assert.Len(t, seen, len(routePermissions))
}
