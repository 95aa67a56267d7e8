// Package seeders fills an empty database with the minimum data needed to
// log in and administer the system.
package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run applies every seeder in dependency order. Each step is idempotent, so
// rerunning against an already seeded database is safe.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	if err := seedDepartments(ctx, db); err != nil {
		return fmt.Errorf("seed departments: %w", err)
	}
	if err := seedMenus(ctx, db); err != nil {
		return fmt.Errorf("seed menus: %w", err)
	}
	if err := seedRoles(ctx, db); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := seedSuperAdmin(ctx, db); err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}
	if err := seedPolicies(ctx, db); err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}
	return nil
}
