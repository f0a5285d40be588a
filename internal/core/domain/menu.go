package domain

import "errors"

var ErrMenuNotFound = errors.New("menu not found")

// Menu is a curated storefront board (e.g. "Breakfast", "Combos"). Status
// false hides the menu from listings without deleting it.
type Menu struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description,omitempty"`
	ColorCode   string `json:"color_code"`
	Status      bool   `json:"status"`
}
