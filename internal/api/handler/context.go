package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/quickbite/food-ordering-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. A zero id means the middleware did not run (misconfigured
// route) or the claims were malformed — fail closed with 401.
func ctxUserID(c echo.Context) (int64, error) {
	id, _ := c.Get(apimiddleware.CtxUserID).(int64)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
