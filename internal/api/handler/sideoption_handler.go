package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type SideOptionHandler struct {
	sideOptionService ports.SideOptionService
}

func NewSideOptionHandler(sideOptionService ports.SideOptionService) *SideOptionHandler {
	return &SideOptionHandler{sideOptionService: sideOptionService}
}

// Create adds a side option to the product in the path; same multipart form
// as toppings.
func (h *SideOptionHandler) Create(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	in, err := bindCreateOption(c)
	if err != nil {
		return err
	}

	option, err := h.sideOptionService.Create(c.Request().Context(), productID, in)
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues("side-option").Inc()
	metrics.CatalogWritesTotal.WithLabelValues("side_option", "create").Inc()
	return respondData(c, http.StatusCreated, option)
}

// List returns the side options of the product named by ?productId=.
func (h *SideOptionHandler) List(c echo.Context) error {
	productID, err := queryProductID(c)
	if err != nil {
		return err
	}

	options, err := h.sideOptionService.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, options)
}

func (h *SideOptionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	option, err := h.sideOptionService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, option)
}

func (h *SideOptionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	in, image, err := bindUpdateOption(c)
	if err != nil {
		return err
	}

	option, err := h.sideOptionService.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	if image {
		metrics.ImagesUploadedTotal.WithLabelValues("side-option").Inc()
	}
	metrics.CatalogWritesTotal.WithLabelValues("side_option", "update").Inc()
	return respondData(c, http.StatusOK, option)
}

func (h *SideOptionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.sideOptionService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("side_option", "delete").Inc()
	return respondMessage(c, http.StatusOK, "side option deleted")
}
