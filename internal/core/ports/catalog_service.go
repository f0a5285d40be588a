package ports

import (
	"context"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Tags        []string
	Type        string
	CategoryID  int64
	Image       ImageUpload
}

// UpdateProductInput is a partial mutation; nil fields are unchanged.
// Tags replaces the whole set when non-nil.
type UpdateProductInput struct {
	Name        *string
	Price       *float64
	Description *string
	Tags        []string
	Type        *string
	Available   *bool
	Image       *ImageUpload
}

type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]ProductSummary, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CreateOptionInput is shared by toppings and side options.
type CreateOptionInput struct {
	Name  string
	Price float64
	Image ImageUpload
}

type UpdateOptionInput struct {
	Name      *string
	Price     *float64
	Available *bool
	Image     *ImageUpload
}

type ToppingService interface {
	Create(ctx context.Context, productID int64, in CreateOptionInput) (*domain.Topping, error)
	ListByProduct(ctx context.Context, productID int64) ([]OptionSummary, error)
	Get(ctx context.Context, id int64) (*domain.Topping, error)
	Update(ctx context.Context, id int64, in UpdateOptionInput) (*domain.Topping, error)
	Delete(ctx context.Context, id int64) error
}

type SideOptionService interface {
	Create(ctx context.Context, productID int64, in CreateOptionInput) (*domain.SideOption, error)
	ListByProduct(ctx context.Context, productID int64) ([]OptionSummary, error)
	Get(ctx context.Context, id int64) (*domain.SideOption, error)
	Update(ctx context.Context, id int64, in UpdateOptionInput) (*domain.SideOption, error)
	Delete(ctx context.Context, id int64) error
}

type CreateMenuInput struct {
	Title       string
	Description string
	ColorCode   string
	Image       ImageUpload
}

type UpdateMenuInput struct {
	Title       *string
	Description *string
	ColorCode   *string
	Status      *bool
	Image       *ImageUpload
}

type MenuService interface {
	Create(ctx context.Context, in CreateMenuInput) (*domain.Menu, error)
	List(ctx context.Context) ([]*domain.Menu, error)
	Get(ctx context.Context, id int64) (*domain.Menu, error)
	Update(ctx context.Context, id int64, in UpdateMenuInput) (*domain.Menu, error)
	Delete(ctx context.Context, id int64) error
}
