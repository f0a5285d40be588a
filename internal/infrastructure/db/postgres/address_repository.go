package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `INSERT INTO addresses (user_id, type, house, area, landmark, latitude, longitude)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		address.UserID, address.Type, address.House, address.Area, address.Landmark,
		address.Latitude, address.Longitude,
	).Scan(&address.ID)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	return address, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `SELECT id, user_id, type, house, area, COALESCE(landmark, ''), latitude, longitude
		FROM addresses WHERE id = $1`

	address := &domain.Address{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&address.ID, &address.UserID, &address.Type, &address.House, &address.Area,
		&address.Landmark, &address.Latitude, &address.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return address, nil
}

func (r *AddressRepository) Update(ctx context.Context, address *domain.Address) error {
	query := `UPDATE addresses
		SET type = $1, house = $2, area = $3, landmark = NULLIF($4, ''), latitude = $5, longitude = $6
		WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		address.Type, address.House, address.Area, address.Landmark,
		address.Latitude, address.Longitude, address.ID,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}
