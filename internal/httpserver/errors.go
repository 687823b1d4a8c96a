package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
	"github.com/Skotchmaster/ecommerce_api/internal/transport"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		// duplicates and dangling references are store errors and stay 500.
		return http.StatusInternalServerError
	}
}

// fail logs err under op and converts it into the HTTP error returned to the client.
// Unexpected errors are reported as fallback so driver details never leak.
func fail(l *slog.Logger, op string, err error, fallback string) error {
	status := statusFor(err)
	msg := service.PublicMessage(err, fallback)

	if status >= http.StatusInternalServerError {
		l.Error(op+"_error", "status", status, "reason", msg, "error", err)
	} else {
		l.Warn(op+"_error", "status", status, "reason", msg, "error", err)
	}
	return echo.NewHTTPError(status, msg)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return uint(id), nil
}

func invalidBody(l *slog.Logger, op string, err error) error {
	l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
}

func message(c echo.Context, text string) error {
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: text})
}
