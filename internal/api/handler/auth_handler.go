package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/api/metrics"
	"github.com/quickbite/food-ordering-api/internal/core/domain"
	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Register creates a new account and returns a fresh token pair.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", registerResult(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return respondData(c, http.StatusCreated, pair)
}

// Login authenticates with email and password and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", loginResult(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return respondData(c, http.StatusOK, pair)
}

// Refresh exchanges a refresh token for new credentials. A still-valid token
// yields an access token only; an expired one yields a full new pair.
//
// All rejection shapes are 401 here, including an account that vanished
// between issuance and exchange — a refresh endpoint must not reveal whether
// an account exists.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues(refreshResult(err)).Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidRefreshToken.Error())
		}
		return err
	}

	if pair.RefreshToken != "" {
		metrics.TokenRefreshTotal.WithLabelValues("recovered").Inc()
	} else {
		metrics.TokenRefreshTotal.WithLabelValues("valid").Inc()
	}
	return respondData(c, http.StatusOK, pair)
}

func registerResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "unauthorized"
	default:
		return "error"
	}
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "unauthorized"
	}
	return "error"
}

func refreshResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRefreshToken),
		errors.Is(err, domain.ErrRefreshTokenInvalid),
		errors.Is(err, domain.ErrRefreshTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrUserNotFound):
		return "rejected"
	default:
		return "error"
	}
}
