package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const toppingImageFolder = "topping"

// ToppingService manages per-product toppings.
type ToppingService struct {
	toppings ports.ToppingRepository
	products ports.ProductRepository
	images   ports.ImageStore
	log      zerolog.Logger
}

func NewToppingService(toppings ports.ToppingRepository, products ports.ProductRepository, images ports.ImageStore, log zerolog.Logger) *ToppingService {
	return &ToppingService{toppings: toppings, products: products, images: images, log: log}
}

func (s *ToppingService) Create(ctx context.Context, productID int64, in ports.CreateOptionInput) (*domain.Topping, error) {
	_, err := s.toppings.FindByNameInProduct(ctx, in.Name, productID)
	if err == nil {
		return nil, domain.ErrToppingExists
	}
	if !errors.Is(err, domain.ErrToppingNotFound) {
		return nil, err
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	imageURL, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, toppingImageFolder)
	if err != nil {
		return nil, err
	}

	return s.toppings.Create(ctx, &domain.Topping{
		Name:      in.Name,
		Price:     in.Price,
		ImageURL:  imageURL,
		Available: true,
		ProductID: productID,
	})
}

func (s *ToppingService) ListByProduct(ctx context.Context, productID int64) ([]ports.OptionSummary, error) {
	return s.toppings.ListByProduct(ctx, productID)
}

func (s *ToppingService) Get(ctx context.Context, id int64) (*domain.Topping, error) {
	return s.toppings.FindByID(ctx, id)
}

func (s *ToppingService) Update(ctx context.Context, id int64, in ports.UpdateOptionInput) (*domain.Topping, error) {
	topping, err := s.toppings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		if topping.ImageURL != "" {
			if err := s.images.Delete(ctx, topping.ImageURL); err != nil {
				s.log.Warn().Err(err).Int64("topping_id", id).Msg("failed to delete previous topping image")
			}
		}
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, toppingImageFolder)
		if err != nil {
			return nil, err
		}
		topping.ImageURL = url
	}

	if in.Name != nil {
		topping.Name = *in.Name
	}
	if in.Price != nil {
		topping.Price = *in.Price
	}
	if in.Available != nil {
		topping.Available = *in.Available
	}

	if err := s.toppings.Update(ctx, topping); err != nil {
		return nil, err
	}
	return topping, nil
}

func (s *ToppingService) Delete(ctx context.Context, id int64) error {
	topping, err := s.toppings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if topping.ImageURL != "" {
		if err := s.images.Delete(ctx, topping.ImageURL); err != nil {
			s.log.Warn().Err(err).Int64("topping_id", id).Msg("failed to delete topping image")
		}
	}

	return s.toppings.Delete(ctx, id)
}
