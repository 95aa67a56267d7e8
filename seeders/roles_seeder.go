package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO sys_role (name, data_scope, status, remark)
		 SELECT 'admin', 1, 1, 'Full access role'
		 WHERE NOT EXISTS (SELECT 1 FROM sys_role WHERE name = 'admin')`)
	if err != nil {
		return err
	}

	// Bind every system menu to the admin role.
	_, err = db.Exec(ctx,
		`INSERT INTO sys_role_menu (role_id, menu_id)
		 SELECT r.id, m.id
		 FROM sys_role r, sys_menu m
		 WHERE r.name = 'admin'
		 ON CONFLICT DO NOTHING`)
	return err
}
