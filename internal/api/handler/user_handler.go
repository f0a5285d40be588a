package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile returns the caller's own account. Password hash and refresh
// fingerprint are excluded at the domain type level.
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update from multipart form fields. An
// optional image replaces the current profile picture.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	in := ports.UpdateProfileInput{
		FullName:    formString(c, "fullName"),
		Email:       formString(c, "email"),
		PhoneNumber: formString(c, "phoneNumber"),
	}

	image, err := formImage(c, false)
	if err != nil {
		return err
	}
	in.Image = image

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}
	if image != nil {
		metrics.ImagesUploadedTotal.WithLabelValues("profile").Inc()
	}
	return respondData(c, http.StatusOK, user)
}

type addAddressRequest struct {
	Type      string  `json:"type" validate:"required,oneof=home work hotel other"`
	House     string  `json:"house" validate:"required"`
	Area      string  `json:"area" validate:"required"`
	Landmark  string  `json:"landmark"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *UserHandler) AddAddress(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.userService.AddAddress(c.Request().Context(), userID, ports.AddAddressInput{
		Type:      req.Type,
		House:     req.House,
		Area:      req.Area,
		Landmark:  req.Landmark,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, address)
}

type updateAddressRequest struct {
	Type      *string  `json:"type" validate:"omitempty,oneof=home work hotel other"`
	House     *string  `json:"house"`
	Area      *string  `json:"area"`
	Landmark  *string  `json:"landmark"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *UserHandler) UpdateAddress(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	addressID, err := pathID(c, "addressId")
	if err != nil {
		return err
	}

	var req updateAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.userService.UpdateAddress(c.Request().Context(), addressID, userID, ports.UpdateAddressInput{
		Type:      req.Type,
		House:     req.House,
		Area:      req.Area,
		Landmark:  req.Landmark,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, address)
}
