package entities

import (
	"github.com/aarondl/null/v8"

	"admin-system/pkg/types"
)

type Department struct {
	ID      uint64      `json:"id" db:"id"`
	Name    string      `json:"name" db:"name"`
	Leader  null.String `json:"leader" db:"leader"`
	Phone   null.String `json:"phone" db:"phone"`
	Email   null.String `json:"email" db:"email"`
	Status  int         `json:"status" db:"status"`
	DelFlag bool        `json:"del_flag" db:"del_flag"`

	types.BaseEntity
}

func (d *Department) Enabled() bool { return d.Status == StatusEnabled }
