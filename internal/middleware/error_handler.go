package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/Eursukkul/restaurant-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error returned by a handler or middleware.
// Validation failures are written as the field map itself; everything else
// uses {"message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr validation.Errors
	if errors.As(err, &verr) {
		_ = c.JSON(http.StatusBadRequest, verr)
		return
	}

	code, msg := status(err)
	if code >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("uri", c.Request().RequestURI),
			slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{"message": msg})
}

func status(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		return he.Code, msg
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "No active account found with the given credentials"
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, "Authentication credentials were not provided."
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Given token not valid for any token type"
	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, "Not found."
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
