package entities

import (
	"github.com/aarondl/null/v8"

	"admin-system/pkg/types"
)

// DataScopeAll is the open data-permission scope: a role carrying it bypasses
// the fine-grained permission-code check entirely.
const DataScopeAll = 1

type Role struct {
	ID        uint64      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	DataScope int         `json:"data_scope" db:"data_scope"`
	Status    int         `json:"status" db:"status"`
	Remark    null.String `json:"remark" db:"remark"`

	Menus []Menu `json:"menus,omitempty" db:"-"`

	types.BaseEntity
}

func (r *Role) Enabled() bool { return r.Status == StatusEnabled }
