package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"admin-system/internal/entities"
	db "admin-system/internal/infrastructure/bd"
	apperrors "admin-system/pkg/errors"
	"admin-system/pkg/types"
)

var roleListColumns = map[string]string{
	"status":     "r.status",
	"data_scope": "r.data_scope",
	"id":         "r.id",
	"name":       "r.name",
	"created_at": "r.created_at",
}

type RoleRepositoryInterface interface {
	GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error)
	FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error)
	CreateRole(ctx context.Context, role *entities.Role) (*entities.Role, error)
	UpdateRole(ctx context.Context, role *entities.Role) error
	DeleteRole(ctx context.Context, id uint64) error
	SetRoleMenus(ctx context.Context, roleID uint64, menuIDs []uint64) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{storage: storage, logger: logger}
}

func (r *RoleRepository) GetRoles(ctx context.Context, filter types.Filter) ([]entities.Role, uint64, error) {
	countSQL, countArgs, err := db.ApplyListParams(
		sq.Select("COUNT(r.id)").From("sys_role r").PlaceholderFormat(sq.Dollar),
		types.Filter{Filter: filter.Filter},
		roleListColumns,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Role{}, 0, nil
	}

	query, args, err := db.ApplyListParams(
		sq.Select("r.id, r.name, r.data_scope, r.status, r.remark, r.created_at, r.updated_at").
			From("sys_role r").PlaceholderFormat(sq.Dollar),
		filter,
		roleListColumns,
	).OrderBy("r.id").ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.DataScope, &role.Status,
			&role.Remark, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

func (r *RoleRepository) FindRoleByID(ctx context.Context, id uint64) (*entities.Role, error) {
	var role entities.Role
	err := r.storage.QueryRow(ctx,
		`SELECT r.id, r.name, r.data_scope, r.status, r.remark, r.created_at, r.updated_at
		 FROM sys_role r WHERE r.id = $1`, id).
		Scan(&role.ID, &role.Name, &role.DataScope, &role.Status,
			&role.Remark, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	menuRows, err := r.storage.Query(ctx,
		`SELECT m.id, m.title, m.name, m.path, m.parent_id, m.sort, m.status, m.perms, m.remark, m.created_at, m.updated_at
		 FROM sys_menu m
		 JOIN sys_role_menu rm ON rm.menu_id = m.id
		 WHERE rm.role_id = $1
		 ORDER BY m.sort, m.id`, id)
	if err != nil {
		return nil, err
	}
	defer menuRows.Close()

	for menuRows.Next() {
		var menu entities.Menu
		if err := menuRows.Scan(&menu.ID, &menu.Title, &menu.Name, &menu.Path,
			&menu.ParentID, &menu.Sort, &menu.Status, &menu.Perms, &menu.Remark,
			&menu.CreatedAt, &menu.UpdatedAt); err != nil {
			return nil, err
		}
		role.Menus = append(role.Menus, menu)
	}
	return &role, menuRows.Err()
}

func (r *RoleRepository) CreateRole(ctx context.Context, role *entities.Role) (*entities.Role, error) {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO sys_role (name, data_scope, status, remark)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		role.Name, role.DataScope, role.Status, role.Remark).
		Scan(&role.ID, &role.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("Role name already exists")
		}
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, role *entities.Role) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sys_role SET name = $1, data_scope = $2, status = $3, remark = $4, updated_at = NOW()
		 WHERE id = $5`,
		role.Name, role.DataScope, role.Status, role.Remark, role.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM sys_role WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) SetRoleMenus(ctx context.Context, roleID uint64, menuIDs []uint64) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sys_role_menu WHERE role_id = $1`, roleID); err != nil {
		return err
	}
	for _, menuID := range menuIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO sys_role_menu (role_id, menu_id) VALUES ($1, $2)`, roleID, menuID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
