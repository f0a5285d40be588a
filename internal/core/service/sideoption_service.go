package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const sideOptionImageFolder = "side-option"

// SideOptionService manages per-product side choices.
type SideOptionService struct {
	sides    ports.SideOptionRepository
	products ports.ProductRepository
	images   ports.ImageStore
	log      zerolog.Logger
}

func NewSideOptionService(sides ports.SideOptionRepository, products ports.ProductRepository, images ports.ImageStore, log zerolog.Logger) *SideOptionService {
	return &SideOptionService{sides: sides, products: products, images: images, log: log}
}

func (s *SideOptionService) Create(ctx context.Context, productID int64, in ports.CreateOptionInput) (*domain.SideOption, error) {
	_, err := s.sides.FindByNameInProduct(ctx, in.Name, productID)
	if err == nil {
		return nil, domain.ErrSideOptionExists
	}
	if !errors.Is(err, domain.ErrSideOptionNotFound) {
		return nil, err
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	imageURL, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, sideOptionImageFolder)
	if err != nil {
		return nil, err
	}

	return s.sides.Create(ctx, &domain.SideOption{
		Name:      in.Name,
		Price:     in.Price,
		ImageURL:  imageURL,
		Available: true,
		ProductID: productID,
	})
}

func (s *SideOptionService) ListByProduct(ctx context.Context, productID int64) ([]ports.OptionSummary, error) {
	return s.sides.ListByProduct(ctx, productID)
}

func (s *SideOptionService) Get(ctx context.Context, id int64) (*domain.SideOption, error) {
	return s.sides.FindByID(ctx, id)
}

func (s *SideOptionService) Update(ctx context.Context, id int64, in ports.UpdateOptionInput) (*domain.SideOption, error) {
	option, err := s.sides.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		if option.ImageURL != "" {
			if err := s.images.Delete(ctx, option.ImageURL); err != nil {
				s.log.Warn().Err(err).Int64("side_option_id", id).Msg("failed to delete previous side option image")
			}
		}
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, sideOptionImageFolder)
		if err != nil {
			return nil, err
		}
		option.ImageURL = url
	}

	if in.Name != nil {
		option.Name = *in.Name
	}
	if in.Price != nil {
		option.Price = *in.Price
	}
	if in.Available != nil {
		option.Available = *in.Available
	}

	if err := s.sides.Update(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *SideOptionService) Delete(ctx context.Context, id int64) error {
	option, err := s.sides.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if option.ImageURL != "" {
		if err := s.images.Delete(ctx, option.ImageURL); err != nil {
			s.log.Warn().Err(err).Int64("side_option_id", id).Msg("failed to delete side option image")
		}
	}

	return s.sides.Delete(ctx, id)
}
