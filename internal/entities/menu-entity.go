package entities

import (
	"strings"

	"github.com/aarondl/null/v8"

	"admin-system/pkg/types"
)

type Menu struct {
	ID       uint64      `json:"id" db:"id"`
	Title    string      `json:"title" db:"title"`
	Name     string      `json:"name" db:"name"`
	Path     null.String `json:"path" db:"path"`
	ParentID *uint64     `json:"parent_id" db:"parent_id"`
	Sort     int         `json:"sort" db:"sort"`
	Status   int         `json:"status" db:"status"`
	// Perms holds a comma-separated permission-code string, e.g.
	// "sys:user:list,sys:user:get".
	Perms  null.String `json:"perms" db:"perms"`
	Remark null.String `json:"remark" db:"remark"`

	types.BaseEntity
}

func (m *Menu) Enabled() bool { return m.Status == StatusEnabled }

// PermCodes splits the comma-separated permission string into a flat list.
func (m *Menu) PermCodes() []string {
	if !m.Perms.Valid || m.Perms.String == "" {
		return nil
	}
	parts := strings.Split(m.Perms.String, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}
