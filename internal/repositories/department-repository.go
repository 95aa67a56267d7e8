package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"admin-system/internal/entities"
	apperrors "admin-system/pkg/errors"
)

type DepartmentRepositoryInterface interface {
	GetDepartments(ctx context.Context) ([]entities.Department, error)
	FindDepartmentByID(ctx context.Context, id uint64) (*entities.Department, error)
	CreateDepartment(ctx context.Context, dept *entities.Department) (*entities.Department, error)
	UpdateDepartment(ctx context.Context, dept *entities.Department) error
	// DeleteDepartment is a soft delete: it flips del_flag instead of
	// removing the row, so users keep a resolvable (but deleted) department.
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

const deptSelectFields = "d.id, d.name, d.leader, d.phone, d.email, d.status, d.del_flag, d.created_at, d.updated_at"

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var dept entities.Department
	err := row.Scan(&dept.ID, &dept.Name, &dept.Leader, &dept.Phone, &dept.Email,
		&dept.Status, &dept.DelFlag, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepository) GetDepartments(ctx context.Context) ([]entities.Department, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT `+deptSelectFields+` FROM sys_dept d WHERE d.del_flag = FALSE ORDER BY d.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	depts := make([]entities.Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		depts = append(depts, *dept)
	}
	return depts, rows.Err()
}

func (r *DepartmentRepository) FindDepartmentByID(ctx context.Context, id uint64) (*entities.Department, error) {
	return scanDepartment(r.storage.QueryRow(ctx,
		`SELECT `+deptSelectFields+` FROM sys_dept d WHERE d.id = $1`, id))
}

func (r *DepartmentRepository) CreateDepartment(ctx context.Context, dept *entities.Department) (*entities.Department, error) {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO sys_dept (name, leader, phone, email, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		dept.Name, dept.Leader, dept.Phone, dept.Email, dept.Status).
		Scan(&dept.ID, &dept.CreatedAt)
	if err != nil {
		return nil, err
	}
	return dept, nil
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, dept *entities.Department) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sys_dept
		 SET name = $1, leader = $2, phone = $3, email = $4, status = $5, updated_at = NOW()
		 WHERE id = $6 AND del_flag = FALSE`,
		dept.Name, dept.Leader, dept.Phone, dept.Email, dept.Status, dept.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sys_dept SET del_flag = TRUE, updated_at = NOW() WHERE id = $1 AND del_flag = FALSE`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
