package handler

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/food-ordering-api/internal/core/ports"
)

const (
	imageFormField = "file"
	maxImageSize   = 500 * 1024 // 500KB
)

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// formImage reads the multipart image field. With required=false a missing
// file returns (nil, nil); every present file is validated for extension and
// size before a single byte reaches the services.
func formImage(c echo.Context, required bool) (*ports.ImageUpload, error) {
	fh, err := c.FormFile(imageFormField)
	if err != nil {
		if !required {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	ext := strings.ToLower(path.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "only jpg, jpeg and png images are accepted")
	}
	if fh.Size > maxImageSize {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("image exceeds the %dKB limit", maxImageSize/1024))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read image file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read image file")
	}
	// The declared size can lie; re-check what was actually read.
	if len(data) > maxImageSize {
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("image exceeds the %dKB limit", maxImageSize/1024))
	}

	return &ports.ImageUpload{Data: data, Filename: fh.Filename}, nil
}
