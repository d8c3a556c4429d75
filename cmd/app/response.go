package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

// badRequest lists the service errors whose message is shown to the client
// with a 400.
var badRequest = []error{
	services.ErrUsernameRequired,
	services.ErrUsernameTooShort,
	services.ErrPasswordTooShort,
	services.ErrUsernameTaken,
	services.ErrUnknownUsername,
	services.ErrWrongPassword,
	services.ErrProductNotInDB,
	services.ErrProductRequired,
	services.ErrCartEmpty,
	services.ErrAddressNotSet,
	services.ErrAddressNotFound,
	services.ErrAddressTooShort,
	services.ErrAddressTooLong,
	services.ErrInsufficientFund,
	services.ErrInvalidAmount,
}

var notFound = []error{
	services.ErrProductNotFound,
	services.ErrNoProductsFound,
	services.ErrUserNotFound,
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "message": msg})
}

// serviceError maps err to a status code. Unknown errors are logged and
// hidden behind a 500.
func serviceError(c echo.Context, err error) error {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return errorJSON(c, http.StatusBadRequest, target.Error())
		}
	}
	for _, target := range notFound {
		if errors.Is(err, target) {
			return errorJSON(c, http.StatusNotFound, target.Error())
		}
	}
	if errors.Is(err, services.ErrPaymentsDisabled) {
		return errorJSON(c, http.StatusServiceUnavailable, err.Error())
	}
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return errorJSON(c, http.StatusInternalServerError, "Internal Server Error")
}
