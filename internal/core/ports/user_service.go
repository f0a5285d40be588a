package ports

import (
	"context"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

// ImageUpload carries a raw in-memory file received from the transport layer.
type ImageUpload struct {
	Data     []byte
	Filename string
}

// UpdateProfileInput is a partial profile mutation; nil fields are unchanged.
// Image, when present, replaces the current profile picture.
type UpdateProfileInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Image       *ImageUpload
}

type AddAddressInput struct {
	Type      string
	House     string
	Area      string
	Landmark  string
	Latitude  float64
	Longitude float64
}

// UpdateAddressInput is a partial address mutation; nil fields are unchanged.
type UpdateAddressInput struct {
	Type      *string
	House     *string
	Area      *string
	Landmark  *string
	Latitude  *float64
	Longitude *float64
}

// UserService manages profiles and delivery addresses.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*domain.User, error)
	AddAddress(ctx context.Context, userID int64, in AddAddressInput) (*domain.Address, error)
	UpdateAddress(ctx context.Context, addressID, userID int64, in UpdateAddressInput) (*domain.Address, error)
}
