package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type MenuHandler struct {
	menuService ports.MenuService
}

func NewMenuHandler(menuService ports.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Create adds a menu board from a multipart form: title, description,
// colorCode and a required image file.
func (h *MenuHandler) Create(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	image, err := formImage(c, true)
	if err != nil {
		return err
	}

	menu, err := h.menuService.Create(c.Request().Context(), ports.CreateMenuInput{
		Title:       title,
		Description: c.FormValue("description"),
		ColorCode:   c.FormValue("colorCode"),
		Image:       *image,
	})
	if err != nil {
		return err
	}

	metrics.ImagesUploadedTotal.WithLabelValues("menu").Inc()
	metrics.CatalogWritesTotal.WithLabelValues("menu", "create").Inc()
	return respondData(c, http.StatusCreated, menu)
}

// List returns active menus only.
func (h *MenuHandler) List(c echo.Context) error {
	menus, err := h.menuService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menus)
}

func (h *MenuHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	menu, err := h.menuService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	status, err := formBool(c, "status")
	if err != nil {
		return err
	}
	image, err := formImage(c, false)
	if err != nil {
		return err
	}

	menu, err := h.menuService.Update(c.Request().Context(), id, ports.UpdateMenuInput{
		Title:       formString(c, "title"),
		Description: formString(c, "description"),
		ColorCode:   formString(c, "colorCode"),
		Status:      status,
		Image:       image,
	})
	if err != nil {
		return err
	}

	if image != nil {
		metrics.ImagesUploadedTotal.WithLabelValues("menu").Inc()
	}
	metrics.CatalogWritesTotal.WithLabelValues("menu", "update").Inc()
	return respondData(c, http.StatusOK, menu)
}

func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.menuService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.CatalogWritesTotal.WithLabelValues("menu", "delete").Inc()
	return respondMessage(c, http.StatusOK, "menu deleted")
}
