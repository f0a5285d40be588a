package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const (
	productImageFolder  = "product"
	productListCacheKey = "catalog:products"
)

// ProductService manages the product catalog. Unfiltered listings are served
// through the catalog cache; every write invalidates it.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	toppings   ports.ToppingRepository
	sides      ports.SideOptionRepository
	images     ports.ImageStore
	cache      ports.CatalogCache
	log        zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	toppings ports.ToppingRepository,
	sides ports.SideOptionRepository,
	images ports.ImageStore,
	cache ports.CatalogCache,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		toppings:   toppings,
		sides:      sides,
		images:     images,
		cache:      cache,
		log:        log,
	}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	_, err := s.products.FindByNameInCategory(ctx, in.Name, in.CategoryID)
	if err == nil {
		return nil, domain.ErrProductExists
	}
	if !errors.Is(err, domain.ErrProductNotFound) {
		return nil, err
	}

	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	imageURL, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, productImageFolder)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Create(ctx, &domain.Product{
		Name:        in.Name,
		Price:       in.Price,
		ImageURL:    imageURL,
		Description: in.Description,
		Tags:        in.Tags,
		Type:        domain.FoodType(in.Type),
		Available:   true,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) ([]ports.ProductSummary, error) {
	cacheable := filter.CategoryID == 0 && filter.Query == ""

	if cacheable {
		var cached []ports.ProductSummary
		hit, err := s.cache.Get(ctx, productListCacheKey, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("product cache lookup failed")
		} else if hit {
			return cached, nil
		}
	}

	summaries, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, productListCacheKey, summaries); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate product cache")
		}
	}
	return summaries, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		if product.ImageURL != "" {
			if err := s.images.Delete(ctx, product.ImageURL); err != nil {
				s.log.Warn().Err(err).Int64("product_id", id).Msg("failed to delete previous product image")
			}
		}
		url, err := s.images.Upload(ctx, in.Image.Data, in.Image.Filename, productImageFolder)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.Type != nil {
		product.Type = domain.FoodType(*in.Type)
	}
	if in.Available != nil {
		product.Available = *in.Available
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return product, nil
}

// Delete removes the product row together with every hosted image it owns:
// its own, its toppings' and its side options'.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		s.deleteImage(ctx, product.ImageURL)
	}

	toppings, err := s.toppings.ListByProduct(ctx, id)
	if err != nil {
		return err
	}
	for _, t := range toppings {
		if t.ImageURL != "" {
			s.deleteImage(ctx, t.ImageURL)
		}
	}

	sides, err := s.sides.ListByProduct(ctx, id)
	if err != nil {
		return err
	}
	for _, o := range sides {
		if o.ImageURL != "" {
			s.deleteImage(ctx, o.ImageURL)
		}
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) deleteImage(ctx context.Context, url string) {
	if err := s.images.Delete(ctx, url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("failed to delete hosted image")
	}
}

func (s *ProductService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, productListCacheKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate product cache")
	}
}
