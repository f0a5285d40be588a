package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type ToppingHandler struct {
	toppingService ports.ToppingService
}

func NewToppingHandler(toppingService ports.ToppingService) *ToppingHandler {
	return &ToppingHandler{toppingService: toppingService}
}

// Create adds a topping to the product in the path from a multipart form:
// name, price and a required image file.
func (h *ToppingHandler) Create(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	in, err := bindCreateOption(c)
	if err != nil {
		return err
	}

	topping, err := h.toppingService.Create(c.Request().Context(), productID, in)
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues("topping").Inc()
	metrics.CatalogWritesTotal.WithLabelValues("topping", "create").Inc()
	return respondData(c, http.StatusCreated, topping)
}

// List returns the toppings of the product named by ?productId=.
func (h *ToppingHandler) List(c echo.Context) error {
	productID, err := queryProductID(c)
	if err != nil {
		return err
	}

	toppings, err := h.toppingService.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toppings)
}

func (h *ToppingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	topping, err := h.toppingService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topping)
}

func (h *ToppingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	in, image, err := bindUpdateOption(c)
	if err != nil {
		return err
	}

	topping, err := h.toppingService.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	if image {
		metrics.ImagesUploadedTotal.WithLabelValues("topping").Inc()
	}
	metrics.CatalogWritesTotal.WithLabelValues("topping", "update").Inc()
	return respondData(c, http.StatusOK, topping)
}

func (h *ToppingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.toppingService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("topping", "delete").Inc()
	return respondMessage(c, http.StatusOK, "topping deleted")
}

// bindCreateOption reads the shared topping/side-option create form.
func bindCreateOption(c echo.Context) (ports.CreateOptionInput, error) {
	name := c.FormValue("name")
	if name == "" {
		return ports.CreateOptionInput{}, echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return ports.CreateOptionInput{}, echo.NewHTTPError(http.StatusBadRequest, "price must be a non-negative number")
	}

	image, err := formImage(c, true)
	if err != nil {
		return ports.CreateOptionInput{}, err
	}

	return ports.CreateOptionInput{Name: name, Price: price, Image: *image}, nil
}

// bindUpdateOption reads the shared topping/side-option partial-update form.
// The bool result reports whether a replacement image was included.
func bindUpdateOption(c echo.Context) (ports.UpdateOptionInput, bool, error) {
	price, err := formFloat(c, "price")
	if err != nil {
		return ports.UpdateOptionInput{}, false, err
	}
	available, err := formBool(c, "available")
	if err != nil {
		return ports.UpdateOptionInput{}, false, err
	}
	image, err := formImage(c, false)
	if err != nil {
		return ports.UpdateOptionInput{}, false, err
	}

	return ports.UpdateOptionInput{
		Name:      formString(c, "name"),
		Price:     price,
		Available: available,
		Image:     image,
	}, image != nil, nil
}

func queryProductID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.QueryParam("productId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "productId must be a positive number")
	}
	return id, nil
}
