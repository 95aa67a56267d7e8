package authz

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"

	"admin-system/pkg/config"
	apperrors "admin-system/pkg/errors"
)

// Model text for the policy engine: subjects are bound to roles through g
// rules, objects match exactly or by keyMatch/keyMatch3 patterns, and a
// stored action of "*" matches any method.
const casbinModelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (keyMatch(r.obj, p.obj) || keyMatch3(r.obj, p.obj)) && (r.act == p.act || p.act == "*")
`

// NewEnforcer builds the policy engine from the built-in model text and the
// given rule store.
func NewEnforcer(adapter persist.Adapter) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(casbinModelText)
	if err != nil {
		return nil, err
	}
	if adapter == nil {
		return casbin.NewEnforcer(m)
	}
	return casbin.NewEnforcer(m, adapter)
}

// CasbinAuthorizer delegates the fine-grained decision to the policy engine,
// matching the request's (subject uuid, path, method) against stored rules.
type CasbinAuthorizer struct {
	cfg      config.RBACConfig
	enforcer *casbin.Enforcer
}

func (a *CasbinAuthorizer) Authorize(ctx context.Context, in Input) error {
	decided, err := precheck(in)
	if err != nil {
		return err
	}
	if decided {
		return nil
	}

	if a.cfg.IsCasbinExcluded(in.Method, in.Path) {
		return nil
	}

	ok, err := a.enforcer.Enforce(in.User.UUID, in.Path, in.Method)
	if err != nil {
		return apperrors.NewServerError("Policy evaluation failed", err)
	}
	if !ok {
		return apperrors.NewAuthorizationError("Permission denied")
	}
	return nil
}
