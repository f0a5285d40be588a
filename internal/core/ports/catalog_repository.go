package ports

import (
	"context"

	"github.com/quickbite/food-ordering-api/internal/core/domain"
)

// ProductSummary is the lightweight projection used by list endpoints.
type ProductSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Type      string  `json:"type"`
	ImageURL  string  `json:"image_url"`
}

// OptionSummary is the list projection shared by toppings and side options.
type OptionSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	ImageURL  string  `json:"image_url"`
}

// ListProductsFilter carries the query parameters for product listings.
// Zero values mean "no filter"; Query matches the name case-insensitively.
type ListProductsFilter struct {
	CategoryID int64
	Query      string
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// FindByName matches case-insensitively (duplicate detection).
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// FindByNameInCategory matches case-insensitively within one category.
	FindByNameInCategory(ctx context.Context, name string, categoryID int64) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]ProductSummary, error)
	Update(ctx context.Context, product *domain.Product) error
	// Delete removes the product; toppings and side options cascade.
	Delete(ctx context.Context, id int64) error
}

type ToppingRepository interface {
	Create(ctx context.Context, topping *domain.Topping) (*domain.Topping, error)
	FindByNameInProduct(ctx context.Context, name string, productID int64) (*domain.Topping, error)
	FindByID(ctx context.Context, id int64) (*domain.Topping, error)
	ListByProduct(ctx context.Context, productID int64) ([]OptionSummary, error)
	Update(ctx context.Context, topping *domain.Topping) error
	Delete(ctx context.Context, id int64) error
}

type SideOptionRepository interface {
	Create(ctx context.Context, option *domain.SideOption) (*domain.SideOption, error)
	FindByNameInProduct(ctx context.Context, name string, productID int64) (*domain.SideOption, error)
	FindByID(ctx context.Context, id int64) (*domain.SideOption, error)
	ListByProduct(ctx context.Context, productID int64) ([]OptionSummary, error)
	Update(ctx context.Context, option *domain.SideOption) error
	Delete(ctx context.Context, id int64) error
}

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) (*domain.Menu, error)
	FindByID(ctx context.Context, id int64) (*domain.Menu, error)
	// ListActive returns menus with status=true only.
	ListActive(ctx context.Context) ([]*domain.Menu, error)
	Update(ctx context.Context, menu *domain.Menu) error
	Delete(ctx context.Context, id int64) error
}
