package domain

import "errors"

var ErrCategoryExists = errors.New("category already exists")
var ErrCategoryNotFound = errors.New("category not found")
var ErrProductExists = errors.New("product already exists")
var ErrProductNotFound = errors.New("product not found")
var ErrToppingExists = errors.New("topping already exists")
var ErrToppingNotFound = errors.New("topping not found")
var ErrSideOptionExists = errors.New("side option already exists")
var ErrSideOptionNotFound = errors.New("side option not found")

// FoodType marks a product as vegetarian or not.
type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "non_veg"
)

// Category groups products on the storefront.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a purchasable item belonging to exactly one category.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Tags        []string `json:"tags"`
	Type        FoodType `json:"type"`
	Available   bool     `json:"available"`
	CategoryID  int64    `json:"category_id"`
}

// Topping is a per-product add-on (extra cheese, olives, ...).
type Topping struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Available bool    `json:"available"`
	ProductID int64   `json:"product_id"`
}

// SideOption is a per-product side choice (fries, salad, ...).
type SideOption struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Available bool    `json:"available"`
	ProductID int64   `json:"product_id"`
}
