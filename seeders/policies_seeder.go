package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedPolicies installs the baseline rule set for the policy-engine mode: the
// admin policy role may perform any action on the versioned API, and the
// superuser account is bound to it by uuid at login time.
func seedPolicies(ctx context.Context, db *pgxpool.Pool) error {
	rules := [][3]string{
		{"p", "r_admin", "/api/v1/*"},
	}
	for _, rule := range rules {
		_, err := db.Exec(ctx,
			`INSERT INTO casbin_rule (ptype, v0, v1, v2)
			 SELECT $1, $2, $3, '*'
			 WHERE NOT EXISTS (
			     SELECT 1 FROM casbin_rule WHERE ptype = $1 AND v0 = $2 AND v1 = $3 AND v2 = '*'
			 )`,
			rule[0], rule[1], rule[2])
		if err != nil {
			return err
		}
	}

	_, err := db.Exec(ctx,
		`INSERT INTO casbin_rule (ptype, v0, v1)
		 SELECT 'g', u.uuid::text, 'r_admin'
		 FROM sys_user u
		 WHERE u.username = 'admin'
		   AND NOT EXISTS (
		       SELECT 1 FROM casbin_rule WHERE ptype = 'g' AND v0 = u.uuid::text AND v1 = 'r_admin'
		   )`)
	return err
}
