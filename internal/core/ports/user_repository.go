package ports

import (
	"context"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

// UpdateProfileFields is a partial update; nil pointers leave the column untouched.
type UpdateProfileFields struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	ImageURL    *string
}

// UserRepository defines persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateRefreshToken overwrites the single-slot refresh fingerprint.
	UpdateRefreshToken(ctx context.Context, id int64, refreshToken string) error
	UpdateProfile(ctx context.Context, id int64, fields UpdateProfileFields) error
}

// AddressRepository defines persistence for user delivery addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
	FindByID(ctx context.Context, id int64) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
}
