package seeders

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-system/pkg/utils"
)

// seedSuperAdmin creates the initial superuser account. The password comes
// from SUPERADMIN_PASSWORD and must be changed after first login.
func seedSuperAdmin(ctx context.Context, db *pgxpool.Pool) error {
	var exists bool
	if err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sys_user WHERE username = 'admin')`).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO sys_user (uuid, username, nickname, password, status, is_superuser, is_staff, dept_id)
		 VALUES ($1, 'admin', 'Administrator', $2, 1, TRUE, TRUE,
		         (SELECT id FROM sys_dept WHERE name = 'Head Office'))`,
		uuid.NewString(), hashed)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO sys_user_role (user_id, role_id)
		 SELECT u.id, r.id
		 FROM sys_user u, sys_role r
		 WHERE u.username = 'admin' AND r.name = 'admin'
		 ON CONFLICT DO NOTHING`)
	return err
}
