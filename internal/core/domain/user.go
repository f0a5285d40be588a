package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailExists = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrAddressNotFound = errors.New("address not found")
var ErrForbidden = errors.New("access forbidden")

// User models an account holder. PasswordHash never leaves the process in
// cleartext, and RefreshToken is the single-slot fingerprint of the most
// recently issued refresh token (last write wins on concurrent logins).
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AddressType enumerates the delivery address labels a user can pick.
type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressHotel AddressType = "hotel"
	AddressOther AddressType = "other"
)

// Address is a delivery location owned by a user.
type Address struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Type      AddressType `json:"type"`
	House     string      `json:"house"`
	Area      string      `json:"area"`
	Landmark  string      `json:"landmark,omitempty"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}
