package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// The form* helpers read optional multipart fields as partial-update
// pointers; an absent field means "leave unchanged".

func formString(c echo.Context, field string) *string {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}
	if _, ok := values[field]; !ok {
		return nil
	}
	v := values.Get(field)
	return &v
}

func formFloat(c echo.Context, field string) (*float64, error) {
	s := formString(c, field)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+" must be a number")
	}
	return &v, nil
}

func formBool(c echo.Context, field string) (*bool, error) {
	s := formString(c, field)
	if s == nil {
		return nil, nil
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+" must be true or false")
	}
	return &v, nil
}

// formTags splits a comma-separated tags field, trimming blanks. Returns nil
// when the field is absent (unchanged) and an empty slice when present but
// blank (clear all tags).
func formTags(c echo.Context, field string) []string {
	s := formString(c, field)
	if s == nil {
		return nil
	}
	parts := strings.Split(*s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
