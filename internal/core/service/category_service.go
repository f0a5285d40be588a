package service

import (
	"context"
	"errors"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

// CategoryService manages product categories.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	_, err := s.categories.FindByName(ctx, name)
	if err == nil {
		return nil, domain.ErrCategoryExists
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	return s.categories.Create(ctx, &domain.Category{Name: name})
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
