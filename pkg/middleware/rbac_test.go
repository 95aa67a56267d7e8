package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-system/internal/authz"
	"admin-system/pkg/api"
	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

// recordingAuthorizer captures the input it was asked about.
type recordingAuthorizer struct {
	lastInput *authz.Input
	deny      bool
}

func (r *recordingAuthorizer) Authorize(ctx context.Context, in authz.Input) error {
	r.lastInput = &in
	if r.deny {
		return apperrors.NewAuthorizationError("Permission denied")
	}
	return nil
}

func newGateServer(recorder *recordingAuthorizer, cfg config.RBACConfig) *echo.Echo {
	e := echo.New()
	permCode := func(method, routePath string) string {
		if method == http.MethodGet && routePath == "/api/v1/users/:id" {
			return "sys:user:get"
		}
		return ""
	}
	gate := NewRBACMiddleware(recorder, cfg, permCode, zap.NewNop())

	e.GET("/api/v1/users/:id", func(c echo.Context) error {
		return api.Success(c, "ok")
	}, gate.Gate)
	e.POST("/api/v1/auth/login", func(c echo.Context) error {
		return api.Success(c, "ok")
	}, gate.Gate)
	return e
}

func TestGatePassesRouteCodeAndRawPath(t *testing.T) {
	recorder := &recordingAuthorizer{}
	e := newGateServer(recorder, config.RBACConfig{Mode: config.PermissionModeRoleMenu})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, recorder.lastInput)
	assert.Equal(t, "/api/v1/users/42", recorder.lastInput.Path)
	assert.Equal(t, http.MethodGet, recorder.lastInput.Method)
	assert.Equal(t, "sys:user:get", recorder.lastInput.PermissionCode)
}

func TestGateDeniedBecomes403(t *testing.T) {
	recorder := &recordingAuthorizer{deny: true}
	e := newGateServer(recorder, config.RBACConfig{Mode: config.PermissionModeRoleMenu})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Permission denied", body.Msg)
}

func TestGateExcludedPathSkipsAuthorizer(t *testing.T) {
	recorder := &recordingAuthorizer{deny: true}
	e := newGateServer(recorder, config.RBACConfig{
		Mode:        config.PermissionModeRoleMenu,
		PathExclude: []string{"/api/v1/auth/login"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, recorder.lastInput)
}
