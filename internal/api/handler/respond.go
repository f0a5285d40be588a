package handler

import "github.com/labstack/echo/v4"

// successEnvelope is the mutation response shape: {"success":true,"data":...}
// or {"success":true,"message":"..."} for deletes.
type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, successEnvelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, msg string) error {
	return c.JSON(status, successEnvelope{Success: true, Message: msg})
}
