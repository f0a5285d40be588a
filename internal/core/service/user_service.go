package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const userImageFolder = "user"

// UserService manages profiles and delivery addresses.
type UserService struct {
	users     ports.UserRepository
	addresses ports.AddressRepository
	images    ports.ImageStore
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, addresses ports.AddressRepository, images ports.ImageStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, addresses: addresses, images: images, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := ports.UpdateProfileFields{
		FullName:    in.FullName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}

	if in.Image != nil {
		if user.ImageURL != "" {
			if err := s.images.Delete(ctx, user.ImageURL); err != nil {
				s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to delete previous profile image")
			}
		}
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, userImageFolder)
		if err != nil {
			return nil, err
		}
		fields.ImageURL = &url
	}

	if err := s.users.UpdateProfile(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) AddAddress(ctx context.Context, userID int64, in ports.AddAddressInput) (*domain.Address, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.addresses.Create(ctx, &domain.Address{
		UserID:    userID,
		Type:      domain.AddressType(in.Type),
		House:     in.House,
		Area:      in.Area,
		Landmark:  in.Landmark,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	})
}

func (s *UserService) UpdateAddress(ctx context.Context, addressID, userID int64, in ports.UpdateAddressInput) (*domain.Address, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	// An address belonging to another account is reported as absent.
	if address.UserID != userID {
		return nil, domain.ErrAddressNotFound
	}

	if in.Type != nil {
		address.Type = domain.AddressType(*in.Type)
	}
	if in.House != nil {
		address.House = *in.House
	}
	if in.Area != nil {
		address.Area = *in.Area
	}
	if in.Landmark != nil {
		address.Landmark = *in.Landmark
	}
	if in.Latitude != nil {
		address.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		address.Longitude = *in.Longitude
	}

	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}
