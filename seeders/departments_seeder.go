package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx,
		`INSERT INTO sys_dept (name, status)
		 SELECT 'Head Office', 1
		 WHERE NOT EXISTS (SELECT 1 FROM sys_dept WHERE name = 'Head Office')`)
	return err
}
