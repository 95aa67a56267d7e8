package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Token: TokenConfig{
			Secret:    "secret",
			Algorithm: "HS256",
		},
		RBAC: RBACConfig{Mode: PermissionModeRoleMenu},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	casbinCfg := validConfig()
	casbinCfg.RBAC.Mode = PermissionModeCasbin
	assert.NoError(t, casbinCfg.Validate())
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := validConfig()
	cfg.RBAC.Mode = "acl"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PERMISSION_MODE")
}

func TestValidateRejectsEmptySecret(t *testing.T) {
	cfg := validConfig()
	cfg.Token.Secret = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonHMACAlgorithm(t *testing.T) {
	cfg := validConfig()
	cfg.Token.Algorithm = "RS256"
	assert.Error(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, PermissionModeRoleMenu, cfg.RBAC.Mode)
	assert.Equal(t, "admin:token", cfg.Token.AccessPrefix)
	assert.Equal(t, "admin:refresh_token", cfg.Token.RefreshPrefix)
	assert.Equal(t, 24*time.Hour, cfg.Token.AccessTTL)
	assert.False(t, cfg.Token.MultiLogin)
	assert.Contains(t, cfg.RBAC.PathExclude, "/api/v1/auth/login")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PERMISSION_MODE", PermissionModeCasbin)
	t.Setenv("TOKEN_MULTI_LOGIN", "true")
	t.Setenv("TOKEN_EXPIRE_SECONDS", "3600")

	cfg := New()
	assert.Equal(t, PermissionModeCasbin, cfg.RBAC.Mode)
	assert.True(t, cfg.Token.MultiLogin)
	assert.Equal(t, time.Hour, cfg.Token.AccessTTL)
}

func TestRBACExclusionHelpers(t *testing.T) {
	cfg := RBACConfig{
		PathExclude:     []string{"/api/v1/auth/login"},
		RoleMenuExclude: []string{"sys:monitor:redis"},
		CasbinExclude:   []MethodPath{{Method: "POST", Path: "/api/v1/auth/logout"}},
	}

	assert.True(t, cfg.IsPathExcluded("/api/v1/auth/login"))
	assert.False(t, cfg.IsPathExcluded("/api/v1/users"))

	assert.True(t, cfg.IsCodeExcluded("sys:monitor:redis"))
	assert.False(t, cfg.IsCodeExcluded("sys:user:list"))

	assert.True(t, cfg.IsCasbinExcluded("POST", "/api/v1/auth/logout"))
	assert.False(t, cfg.IsCasbinExcluded("GET", "/api/v1/auth/logout"))
}

func TestParseMethodPaths(t *testing.T) {
	out := parseMethodPaths([]string{"post /api/v1/auth/logout", "GET /api/v1/users", "malformed"})

	assert.Equal(t, []MethodPath{
		{Method: "POST", Path: "/api/v1/auth/logout"},
		{Method: "GET", Path: "/api/v1/users"},
	}, out)
}
