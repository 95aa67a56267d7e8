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

type MenuRepositoryInterface interface {
	GetMenus(ctx context.Context) ([]entities.Menu, error)
	FindMenuByID(ctx context.Context, id uint64) (*entities.Menu, error)
	CreateMenu(ctx context.Context, menu *entities.Menu) (*entities.Menu, error)
	UpdateMenu(ctx context.Context, menu *entities.Menu) error
	DeleteMenu(ctx context.Context, id uint64) error
}

type MenuRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMenuRepository(storage *pgxpool.Pool, logger *zap.Logger) MenuRepositoryInterface {
	return &MenuRepository{storage: storage, logger: logger}
}

const menuSelectFields = "m.id, m.title, m.name, m.path, m.parent_id, m.sort, m.status, m.perms, m.remark, m.created_at, m.updated_at"

func scanMenu(row pgx.Row) (*entities.Menu, error) {
	var menu entities.Menu
	err := row.Scan(&menu.ID, &menu.Title, &menu.Name, &menu.Path, &menu.ParentID,
		&menu.Sort, &menu.Status, &menu.Perms, &menu.Remark,
		&menu.CreatedAt, &menu.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) GetMenus(ctx context.Context) ([]entities.Menu, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT `+menuSelectFields+` FROM sys_menu m ORDER BY m.sort, m.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]entities.Menu, 0)
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) FindMenuByID(ctx context.Context, id uint64) (*entities.Menu, error) {
	return scanMenu(r.storage.QueryRow(ctx,
		`SELECT `+menuSelectFields+` FROM sys_menu m WHERE m.id = $1`, id))
}

func (r *MenuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) (*entities.Menu, error) {
	err := r.storage.QueryRow(ctx,
		`INSERT INTO sys_menu (title, name, path, parent_id, sort, status, perms, remark)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		menu.Title, menu.Name, menu.Path, menu.ParentID, menu.Sort, menu.Status,
		menu.Perms, menu.Remark).
		Scan(&menu.ID, &menu.CreatedAt)
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (r *MenuRepository) UpdateMenu(ctx context.Context, menu *entities.Menu) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE sys_menu
		 SET title = $1, name = $2, path = $3, parent_id = $4, sort = $5,
		     status = $6, perms = $7, remark = $8, updated_at = NOW()
		 WHERE id = $9`,
		menu.Title, menu.Name, menu.Path, menu.ParentID, menu.Sort, menu.Status,
		menu.Perms, menu.Remark, menu.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteMenu(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM sys_menu WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
