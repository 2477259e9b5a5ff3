package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/CutieCat6778/reservation-frontdesk/internal/service/backend"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/breaker"
)

// httpError maps backend/service failures onto transport codes. GraphQL
// errors carry backend validation messages and stay visible to the caller;
// everything transport-shaped collapses into 502/503.
func httpError(err error) *echo.HTTPError {
	var gqlErr *backend.Error
	switch {
	case errors.Is(err, breaker.ErrOpen):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "reservation backend temporarily unavailable")
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUnauthorized.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.As(err, &gqlErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, gqlErr.Message)
	case errors.Is(err, errs.ErrBackend):
		return echo.NewHTTPError(http.StatusBadGateway, errs.ErrBackend.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// authError hides the failure cause behind one generic message so login
// responses cannot be used to probe for existing reservations or accounts.
// Backend outages still surface as such.
func authError(err error) *echo.HTTPError {
	if errors.Is(err, breaker.ErrOpen) || errors.Is(err, errs.ErrBackend) {
		return httpError(err)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUnauthorized.Error())
}
