package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/api/middleware"
	"github.com/utilize/marketplace-api/internal/core/domain"
)

// principalEmail returns the email the access gate attached to the request.
// Reaching a protected handler without one means the route was wired without
// the gate, so it is reported as 401 rather than trusted.
func principalEmail(c echo.Context) (string, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return p.Email, nil
}

// binder exposes the per-source bind steps of Echo's default binder.
var binder = &echo.DefaultBinder{}

// bindPath fills req from route parameters only, then validates it.
func bindPath(c echo.Context, req any) error {
	if err := binder.BindPathParams(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid path parameters")
	}
	return validate(c, req)
}

// bindQuery fills req from the query string only, then validates it.
func bindQuery(c echo.Context, req any) error {
	if err := binder.BindQueryParams(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	return validate(c, req)
}

// bindBody decodes the request body into req and then applies route
// parameters, so a value in the path always wins over one in the body.
func bindBody(c echo.Context, req any) error {
	if err := binder.BindBody(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := binder.BindPathParams(c, req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid path parameters")
	}
	return validate(c, req)
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
