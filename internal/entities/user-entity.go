package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"admin-system/pkg/types"
)

// Status values shared by users, departments, roles and menus.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

type User struct {
	ID       uint64 `json:"id" db:"id"`
	UUID     string `json:"uuid" db:"uuid"`
	Username string `json:"username" db:"username"`
	Nickname string `json:"nickname" db:"nickname"`

	Password string `json:"-" db:"password"`

	Email  null.String `json:"email" db:"email"`
	Phone  null.String `json:"phone" db:"phone"`
	Avatar null.String `json:"avatar" db:"avatar"`

	Status      int  `json:"status" db:"status"`
	IsSuperuser bool `json:"is_superuser" db:"is_superuser"`
	IsStaff     bool `json:"is_staff" db:"is_staff"`

	DeptID *uint64     `json:"dept_id" db:"dept_id"`
	Dept   *Department `json:"dept,omitempty" db:"-"`
	Roles  []Role      `json:"roles,omitempty" db:"-"`

	LastLoginTime *time.Time `json:"last_login_time" db:"last_login_time"`

	types.BaseEntity
}

func (u *User) Enabled() bool { return u.Status == StatusEnabled }
