package ports

import (
	"context"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

// AuthService orchestrates registration, login and refresh-token flows.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}
