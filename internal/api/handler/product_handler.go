package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create adds a product from a multipart form: name, price, description,
// tags (comma-separated), type (veg|non_veg), category_id and a required
// image file.
func (h *ProductHandler) Create(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a positive number")
	}

	foodType := c.FormValue("type")
	if foodType != "veg" && foodType != "non_veg" {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be one of: veg non_veg")
	}

	categoryID, err := strconv.ParseInt(c.FormValue("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "categoryId must be a positive number")
	}

	image, err := formImage(c, true)
	if err != nil {
		return err
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        name,
		Price:       price,
		Description: c.FormValue("description"),
		Tags:        formTags(c, "tags"),
		Type:        foodType,
		CategoryID:  categoryID,
		Image:       *image,
	})
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues("product").Inc()
	metrics.CatalogWritesTotal.WithLabelValues("product", "create").Inc()
	return respondData(c, http.StatusCreated, product)
}

// List returns product summaries, optionally filtered by ?categoryId= and a
// case-insensitive ?query= name match.
func (h *ProductHandler) List(c echo.Context) error {
	var filter ports.ListProductsFilter

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "categoryId must be a positive number")
		}
		filter.CategoryID = id
	}
	filter.Query = c.QueryParam("query")

	products, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update applies a partial update; only multipart fields that are present
// change, and an optional image replaces the current one.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	price, err := formFloat(c, "price")
	if err != nil {
		return err
	}
	available, err := formBool(c, "available")
	if err != nil {
		return err
	}
	if t := formString(c, "type"); t != nil && *t != "veg" && *t != "non_veg" {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be one of: veg non_veg")
	}

	image, err := formImage(c, false)
	if err != nil {
		return err
	}

	product, err := h.productService.Update(c.Request().Context(), id, ports.UpdateProductInput{
		Name:        formString(c, "name"),
		Price:       price,
		Description: formString(c, "description"),
		Tags:        formTags(c, "tags"),
		Type:        formString(c, "type"),
		Available:   available,
		Image:       image,
	})
	if err != nil {
		return err
	}

	if image != nil {
		metrics.ImagesUploadedTotal.WithLabelValues("product").Inc()
	}
	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "delete").Inc()
	return respondMessage(c, http.StatusOK, "product deleted")
}
