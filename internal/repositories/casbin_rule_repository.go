package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-system/internal/entities"
)

// CasbinRuleRepository persists casbin policy and role-binding tuples in the
// casbin_rule table and doubles as the enforcer's persist.Adapter.
type CasbinRuleRepository struct {
	storage *pgxpool.Pool
}

var _ persist.Adapter = (*CasbinRuleRepository)(nil)

func NewCasbinRuleRepository(storage *pgxpool.Pool) *CasbinRuleRepository {
	return &CasbinRuleRepository{storage: storage}
}

func (r *CasbinRuleRepository) GetRules(ctx context.Context) ([]entities.CasbinRule, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, ptype, v0, v1, v2, v3, v4, v5 FROM casbin_rule ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]entities.CasbinRule, 0)
	for rows.Next() {
		var rule entities.CasbinRule
		if err := rows.Scan(&rule.ID, &rule.PType, &rule.V0, &rule.V1, &rule.V2,
			&rule.V3, &rule.V4, &rule.V5); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// --- persist.Adapter ---

func (r *CasbinRuleRepository) LoadPolicy(m model.Model) error {
	rules, err := r.GetRules(context.Background())
	if err != nil {
		return err
	}

	for _, rule := range rules {
		parts := []string{rule.PType}
		for _, v := range []string{rule.V0, rule.V1, rule.V2, rule.V3, rule.V4, rule.V5} {
			if v == "" {
				break
			}
			parts = append(parts, v)
		}
		if err := persist.LoadPolicyLine(strings.Join(parts, ", "), m); err != nil {
			return err
		}
	}
	return nil
}

func (r *CasbinRuleRepository) SavePolicy(m model.Model) error {
	ctx := context.Background()
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM casbin_rule`); err != nil {
		return err
	}

	for _, section := range []string{"p", "g"} {
		for ptype, assertion := range m[section] {
			for _, rule := range assertion.Policy {
				padded := pad(rule)
				if _, err := tx.Exec(ctx,
					`INSERT INTO casbin_rule (ptype, v0, v1, v2, v3, v4, v5)
					 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
					ptype, padded[0], padded[1], padded[2], padded[3], padded[4], padded[5]); err != nil {
					return err
				}
			}
		}
	}
	return tx.Commit(ctx)
}

func (r *CasbinRuleRepository) AddPolicy(sec string, ptype string, rule []string) error {
	padded := pad(rule)
	_, err := r.storage.Exec(context.Background(),
		`INSERT INTO casbin_rule (ptype, v0, v1, v2, v3, v4, v5)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ptype, padded[0], padded[1], padded[2], padded[3], padded[4], padded[5])
	return err
}

func (r *CasbinRuleRepository) RemovePolicy(sec string, ptype string, rule []string) error {
	padded := pad(rule)
	_, err := r.storage.Exec(context.Background(),
		`DELETE FROM casbin_rule
		 WHERE ptype = $1 AND v0 = $2 AND v1 = $3 AND v2 = $4 AND v3 = $5 AND v4 = $6 AND v5 = $7`,
		ptype, padded[0], padded[1], padded[2], padded[3], padded[4], padded[5])
	return err
}

func (r *CasbinRuleRepository) RemoveFilteredPolicy(sec string, ptype string, fieldIndex int, fieldValues ...string) error {
	query := `DELETE FROM casbin_rule WHERE ptype = $1`
	args := []interface{}{ptype}

	columns := []string{"v0", "v1", "v2", "v3", "v4", "v5"}
	for i, value := range fieldValues {
		if value == "" {
			continue
		}
		col := columns[fieldIndex+i]
		args = append(args, value)
		query += ` AND ` + col + ` = $` + strconv.Itoa(len(args))
	}

	_, err := r.storage.Exec(context.Background(), query, args...)
	return err
}

func pad(rule []string) [6]string {
	var padded [6]string
	copy(padded[:], rule)
	return padded
}
