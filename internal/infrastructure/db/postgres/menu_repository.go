package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	query := `INSERT INTO menus (title, image_url, description, color_code, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		menu.Title, menu.ImageURL, menu.Description, menu.ColorCode, menu.Status,
	).Scan(&menu.ID)
	if err != nil {
		return nil, fmt.Errorf("insert menu: %w", err)
	}
	return menu, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id int64) (*domain.Menu, error) {
	query := `SELECT id, title, image_url, COALESCE(description, ''), color_code, status
		FROM menus WHERE id = $1`

	menu := &domain.Menu{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&menu.ID, &menu.Title, &menu.ImageURL, &menu.Description, &menu.ColorCode, &menu.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu: %w", err)
	}
	return menu, nil
}

func (r *MenuRepository) ListActive(ctx context.Context) ([]*domain.Menu, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, image_url, COALESCE(description, ''), color_code, status
		 FROM menus WHERE status = TRUE ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	menus := make([]*domain.Menu, 0)
	for rows.Next() {
		menu := &domain.Menu{}
		if err := rows.Scan(&menu.ID, &menu.Title, &menu.ImageURL, &menu.Description, &menu.ColorCode, &menu.Status); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) error {
	query := `UPDATE menus
		SET title = $1, image_url = $2, description = NULLIF($3, ''), color_code = $4, status = $5
		WHERE id = $6`

	tag, err := r.pool.Exec(ctx, query,
		menu.Title, menu.ImageURL, menu.Description, menu.ColorCode, menu.Status, menu.ID,
	)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}
