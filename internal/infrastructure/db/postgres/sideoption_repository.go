package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type SideOptionRepository struct {
	pool *pgxpool.Pool
}

func NewSideOptionRepository(pool *pgxpool.Pool) *SideOptionRepository {
	return &SideOptionRepository{pool: pool}
}

func (r *SideOptionRepository) Create(ctx context.Context, option *domain.SideOption) (*domain.SideOption, error) {
	query := `INSERT INTO side_options (name, price, image_url, available, product_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		option.Name, option.Price, option.ImageURL, option.Available, option.ProductID,
	).Scan(&option.ID)
	if err != nil {
		return nil, fmt.Errorf("insert side option: %w", err)
	}
	return option, nil
}

func (r *SideOptionRepository) FindByNameInProduct(ctx context.Context, name string, productID int64) (*domain.SideOption, error) {
	query := `SELECT id, name, price, COALESCE(image_url, ''), available, product_id
		FROM side_options WHERE lower(name) = lower($1) AND product_id = $2`
	return r.scanOption(r.pool.QueryRow(ctx, query, name, productID))
}

func (r *SideOptionRepository) FindByID(ctx context.Context, id int64) (*domain.SideOption, error) {
	query := `SELECT id, name, price, COALESCE(image_url, ''), available, product_id
		FROM side_options WHERE id = $1`
	return r.scanOption(r.pool.QueryRow(ctx, query, id))
}

func (r *SideOptionRepository) ListByProduct(ctx context.Context, productID int64) ([]ports.OptionSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, available, COALESCE(image_url, '') FROM side_options WHERE product_id = $1 ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list side options: %w", err)
	}
	defer rows.Close()

	return scanOptionSummaries(rows)
}

func (r *SideOptionRepository) Update(ctx context.Context, option *domain.SideOption) error {
	query := `UPDATE side_options SET name = $1, price = $2, image_url = NULLIF($3, ''), available = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query,
		option.Name, option.Price, option.ImageURL, option.Available, option.ID,
	)
	if err != nil {
		return fmt.Errorf("update side option: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSideOptionNotFound
	}
	return nil
}

func (r *SideOptionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM side_options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete side option: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSideOptionNotFound
	}
	return nil
}

func (r *SideOptionRepository) scanOption(row pgx.Row) (*domain.SideOption, error) {
	option := &domain.SideOption{}
	err := row.Scan(
		&option.ID, &option.Name, &option.Price, &option.ImageURL,
		&option.Available, &option.ProductID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSideOptionNotFound
		}
		return nil, fmt.Errorf("find side option: %w", err)
	}
	return option, nil
}
