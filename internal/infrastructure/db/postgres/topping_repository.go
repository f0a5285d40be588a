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

type ToppingRepository struct {
	pool *pgxpool.Pool
}

func NewToppingRepository(pool *pgxpool.Pool) *ToppingRepository {
	return &ToppingRepository{pool: pool}
}

func (r *ToppingRepository) Create(ctx context.Context, topping *domain.Topping) (*domain.Topping, error) {
	query := `INSERT INTO toppings (name, price, image_url, available, product_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		topping.Name, topping.Price, topping.ImageURL, topping.Available, topping.ProductID,
	).Scan(&topping.ID)
	if err != nil {
		return nil, fmt.Errorf("insert topping: %w", err)
	}
	return topping, nil
}

func (r *ToppingRepository) FindByNameInProduct(ctx context.Context, name string, productID int64) (*domain.Topping, error) {
	query := `SELECT id, name, price, COALESCE(image_url, ''), available, product_id
		FROM toppings WHERE lower(name) = lower($1) AND product_id = $2`
	return r.scanTopping(r.pool.QueryRow(ctx, query, name, productID))
}

func (r *ToppingRepository) FindByID(ctx context.Context, id int64) (*domain.Topping, error) {
	query := `SELECT id, name, price, COALESCE(image_url, ''), available, product_id
		FROM toppings WHERE id = $1`
	return r.scanTopping(r.pool.QueryRow(ctx, query, id))
}

func (r *ToppingRepository) ListByProduct(ctx context.Context, productID int64) ([]ports.OptionSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, available, COALESCE(image_url, '') FROM toppings WHERE product_id = $1 ORDER BY id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list toppings: %w", err)
	}
	defer rows.Close()

	return scanOptionSummaries(rows)
}

func (r *ToppingRepository) Update(ctx context.Context, topping *domain.Topping) error {
	query := `UPDATE toppings SET name = $1, price = $2, image_url = NULLIF($3, ''), available = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query,
		topping.Name, topping.Price, topping.ImageURL, topping.Available, topping.ID,
	)
	if err != nil {
		return fmt.Errorf("update topping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrToppingNotFound
	}
	return nil
}

func (r *ToppingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM toppings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete topping: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrToppingNotFound
	}
	return nil
}

func (r *ToppingRepository) scanTopping(row pgx.Row) (*domain.Topping, error) {
	topping := &domain.Topping{}
	err := row.Scan(
		&topping.ID, &topping.Name, &topping.Price, &topping.ImageURL,
		&topping.Available, &topping.ProductID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrToppingNotFound
		}
		return nil, fmt.Errorf("find topping: %w", err)
	}
	return topping, nil
}

// scanOptionSummaries drains rows of (id, name, price, available, image_url),
// the projection shared by toppings and side options.
func scanOptionSummaries(rows pgx.Rows) ([]ports.OptionSummary, error) {
	summaries := make([]ports.OptionSummary, 0)
	for rows.Next() {
		var s ports.OptionSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Available, &s.ImageURL); err != nil {
			return nil, fmt.Errorf("scan option summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
