package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/planora/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, dto.Envelope{
		Data:   data,
		Error:  false,
		Status: status,
	})
}

// respondError maps service errors onto the HTTP surface: field failures
// become a 400 validation envelope, missing rows a 404, everything else a
// generic 500 with the detail kept server-side.
func respondError(c echo.Context, err error, notFoundMessage string) error {
	var validationErrs dto.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": validationErrs})
	case errors.Is(err, dto.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": notFoundMessage})
	default:
		logrus.Errorf("Request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server Error"})
	}
}

// ErrorHandler is the catch-all for anything that escapes the handlers,
// including panics surfaced by the recover middleware.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]any{"error": httpErr.Message})
		return
	}

	logrus.Errorf("Unhandled error: %v", err)
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server Error"})
}
