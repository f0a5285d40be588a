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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, name, price, image_url, description, rating, tags, type, available, category_id`

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `INSERT INTO products (name, price, image_url, description, tags, type, available, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, rating`

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Price, product.ImageURL, product.Description,
		product.Tags, product.Type, product.Available, product.CategoryID,
	).Scan(&product.ID, &product.Rating)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) FindByNameInCategory(ctx context.Context, name string, categoryID int64) (*domain.Product, error) {
	// Exact case-insensitive match: ILIKE would let % and _ in the name act
	// as wildcards.
	query := `SELECT ` + productColumns + ` FROM products WHERE lower(name) = lower($1) AND category_id = $2`
	return r.scanProduct(r.pool.QueryRow(ctx, query, name, categoryID))
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanProduct(r.pool.QueryRow(ctx, query, id))
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ListProductsFilter) ([]ports.ProductSummary, error) {
	query := `SELECT id, name, price, available, type, image_url FROM products`
	args := make([]any, 0, 2)

	where := ""
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		where = fmt.Sprintf(" WHERE category_id = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		clause := fmt.Sprintf("name ILIKE $%d", len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	rows, err := r.pool.Query(ctx, query+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	summaries := make([]ports.ProductSummary, 0)
	for rows.Next() {
		var s ports.ProductSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Available, &s.Type, &s.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products
		SET name = $1, price = $2, image_url = $3, description = $4, tags = $5, type = $6, available = $7
		WHERE id = $8`

	tag, err := r.pool.Exec(ctx, query,
		product.Name, product.Price, product.ImageURL, product.Description,
		product.Tags, product.Type, product.Available, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID, &product.Name, &product.Price, &product.ImageURL, &product.Description,
		&product.Rating, &product.Tags, &product.Type, &product.Available, &product.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}
