package repositories

import (
	"context"
	"errors"
	"fmt"

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

const userSelectFields = "u.id, u.uuid, u.username, u.nickname, u.password, u.email, u.phone, u.avatar, u.status, u.is_superuser, u.is_staff, u.dept_id, u.last_login_time, u.created_at, u.updated_at"

var userListColumns = map[string]string{
	"status":       "u.status",
	"dept_id":      "u.dept_id",
	"is_superuser": "u.is_superuser",
	"is_staff":     "u.is_staff",
	"id":           "u.id",
	"username":     "u.username",
	"created_at":   "u.created_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	// FindUserWithRelations loads the user together with department, roles and
	// each role's menus; this is the shape the auth pipeline consumes.
	FindUserWithRelations(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User, roleIDs []uint64) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) error
	SetUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error
	DeleteUser(ctx context.Context, id uint64) error
	UpdateLoginTime(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.UUID, &user.Username, &user.Nickname, &user.Password,
		&user.Email, &user.Phone, &user.Avatar, &user.Status,
		&user.IsSuperuser, &user.IsStaff, &user.DeptID, &user.LastLoginTime,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	base := sq.Select(userSelectFields).
		From("sys_user u").
		PlaceholderFormat(sq.Dollar).
		Where(searchCondition(filter.Search))

	// Count with the same conditions but without pagination.
	countSQL, countSQLArgs, err := db.ApplyListParams(
		sq.Select("COUNT(u.id)").From("sys_user u").PlaceholderFormat(sq.Dollar).
			Where(searchCondition(filter.Search)),
		types.Filter{Filter: filter.Filter},
		userListColumns,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countSQLArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	listBuilder := db.ApplyListParams(base, filter, userListColumns).OrderBy("u.id DESC")
	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

func searchCondition(search string) sq.Sqlizer {
	if search == "" {
		return sq.Expr("TRUE")
	}
	pattern := "%" + search + "%"
	return sq.Or{
		sq.ILike{"u.username": pattern},
		sq.ILike{"u.nickname": pattern},
		sq.ILike{"u.email": pattern},
	}
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM sys_user u WHERE u.id = $1", userSelectFields)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM sys_user u WHERE u.username = $1", userSelectFields)
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *UserRepository) FindUserWithRelations(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.DeptID != nil {
		dept, err := r.findDepartment(ctx, *user.DeptID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Dept = dept
	}

	roles, err := r.findUserRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Roles = roles
	return user, nil
}

func (r *UserRepository) findDepartment(ctx context.Context, id uint64) (*entities.Department, error) {
	var dept entities.Department
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, leader, phone, email, status, del_flag, created_at, updated_at
		 FROM sys_dept WHERE id = $1`, id).
		Scan(&dept.ID, &dept.Name, &dept.Leader, &dept.Phone, &dept.Email,
			&dept.Status, &dept.DelFlag, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *UserRepository) findUserRoles(ctx context.Context, userID uint64) ([]entities.Role, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT r.id, r.name, r.data_scope, r.status, r.remark, r.created_at, r.updated_at
		 FROM sys_role r
		 JOIN sys_user_role ur ON ur.role_id = r.id
		 WHERE ur.user_id = $1
		 ORDER BY r.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	roleIDs := make([]int64, 0)
	for rows.Next() {
		var role entities.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.DataScope, &role.Status,
			&role.Remark, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
		roleIDs = append(roleIDs, int64(role.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return roles, nil
	}

	menuRows, err := r.storage.Query(ctx,
		`SELECT rm.role_id, m.id, m.title, m.name, m.path, m.parent_id, m.sort, m.status, m.perms, m.remark, m.created_at, m.updated_at
		 FROM sys_menu m
		 JOIN sys_role_menu rm ON rm.menu_id = m.id
		 WHERE rm.role_id = ANY($1)
		 ORDER BY m.sort, m.id`, roleIDs)
	if err != nil {
		return nil, err
	}
	defer menuRows.Close()

	menusByRole := make(map[uint64][]entities.Menu)
	for menuRows.Next() {
		var roleID uint64
		var menu entities.Menu
		if err := menuRows.Scan(&roleID, &menu.ID, &menu.Title, &menu.Name, &menu.Path,
			&menu.ParentID, &menu.Sort, &menu.Status, &menu.Perms, &menu.Remark,
			&menu.CreatedAt, &menu.UpdatedAt); err != nil {
			return nil, err
		}
		menusByRole[roleID] = append(menusByRole[roleID], menu)
	}
	if err := menuRows.Err(); err != nil {
		return nil, err
	}

	for i := range roles {
		roles[i].Menus = menusByRole[roles[i].ID]
	}
	return roles, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User, roleIDs []uint64) (*entities.User, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO sys_user (uuid, username, nickname, password, email, phone, status, is_superuser, is_staff, dept_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		user.UUID, user.Username, user.Nickname, user.Password, user.Email, user.Phone,
		user.Status, user.IsSuperuser, user.IsStaff, user.DeptID).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("Username already registered")
		}
		return nil, err
	}

	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO sys_user_role (user_id, role_id) VALUES ($1, $2)`, user.ID, roleID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sys_user
		 SET nickname = $1, email = $2, phone = $3, avatar = $4, status = $5,
		     is_superuser = $6, is_staff = $7, dept_id = $8, updated_at = NOW()
		 WHERE id = $9`,
		user.Nickname, user.Email, user.Phone, user.Avatar, user.Status,
		user.IsSuperuser, user.IsStaff, user.DeptID, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetUserRoles(ctx context.Context, userID uint64, roleIDs []uint64) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sys_user_role WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO sys_user_role (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM sys_user WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateLoginTime(ctx context.Context, id uint64) error {
	_, err := r.storage.Exec(ctx, `UPDATE sys_user SET last_login_time = NOW() WHERE id = $1`, id)
	return err
}
