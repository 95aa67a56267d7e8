package routes

// routePermissions maps a registered route (method plus echo route path) to
// the permission code checked by the role-menu gate. Routes absent from the
// table carry no code and pass the code check.
var routePermissions = map[string]string{
	"GET /api/v1/users":        "sys:user:list",
	"GET /api/v1/users/export": "sys:user:export",
	"GET /api/v1/users/:id":    "sys:user:get",
	"POST /api/v1/users":       "sys:user:add",
	"PUT /api/v1/users/:id":    "sys:user:edit",
	"DELETE /api/v1/users/:id": "sys:user:del",

	"GET /api/v1/roles":           "sys:role:list",
	"GET /api/v1/roles/:id":       "sys:role:get",
	"POST /api/v1/roles":          "sys:role:add",
	"PUT /api/v1/roles/:id":       "sys:role:edit",
	"PUT /api/v1/roles/:id/menus": "sys:role:menu:edit",
	"DELETE /api/v1/roles/:id":    "sys:role:del",

	"GET /api/v1/menus":        "sys:menu:list",
	"GET /api/v1/menus/:id":    "sys:menu:get",
	"POST /api/v1/menus":       "sys:menu:add",
	"PUT /api/v1/menus/:id":    "sys:menu:edit",
	"DELETE /api/v1/menus/:id": "sys:menu:del",

	"GET /api/v1/depts":        "sys:dept:list",
	"GET /api/v1/depts/:id":    "sys:dept:get",
	"POST /api/v1/depts":       "sys:dept:add",
	"PUT /api/v1/depts/:id":    "sys:dept:edit",
	"DELETE /api/v1/depts/:id": "sys:dept:del",

	"GET /api/v1/policies":           "sys:policy:list",
	"POST /api/v1/policies":          "sys:policy:add",
	"DELETE /api/v1/policies":        "sys:policy:del",
	"POST /api/v1/policies/groups":   "sys:policy:group:add",
	"DELETE /api/v1/policies/groups": "sys:policy:group:del",
}

// PermissionCode resolves the code for a matched route, or "" when none is
// registered.
func PermissionCode(method, routePath string) string {
	return routePermissions[method+" "+routePath]
}
