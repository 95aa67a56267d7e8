package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type menuSeed struct {
	title string
	name  string
	path  string
	sort  int
	perms string
}

var systemMenus = []menuSeed{
	{"User Management", "SysUser", "/system/users", 1, "sys:user:list,sys:user:get,sys:user:add,sys:user:edit,sys:user:del,sys:user:export"},
	{"Role Management", "SysRole", "/system/roles", 2, "sys:role:list,sys:role:get,sys:role:add,sys:role:edit,sys:role:del,sys:role:menu:edit"},
	{"Menu Management", "SysMenu", "/system/menus", 3, "sys:menu:list,sys:menu:get,sys:menu:add,sys:menu:edit,sys:menu:del"},
	{"Department Management", "SysDept", "/system/depts", 4, "sys:dept:list,sys:dept:get,sys:dept:add,sys:dept:edit,sys:dept:del"},
	{"Policy Management", "SysPolicy", "/system/policies", 5, "sys:policy:list,sys:policy:add,sys:policy:del,sys:policy:group:add,sys:policy:group:del"},
}

func seedMenus(ctx context.Context, db *pgxpool.Pool) error {
	for _, m := range systemMenus {
		_, err := db.Exec(ctx,
			`INSERT INTO sys_menu (title, name, path, sort, status, perms)
			 SELECT $1, $2, $3, $4, 1, $5
			 WHERE NOT EXISTS (SELECT 1 FROM sys_menu WHERE name = $2)`,
			m.title, m.name, m.path, m.sort, m.perms)
		if err != nil {
			return err
		}
	}
	return nil
}
