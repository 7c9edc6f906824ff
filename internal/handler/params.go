package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/restaurant-service/internal/auth"
	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter. Anything that is not a positive
// integer cannot name a row and is reported as not found.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found.")
	}
	return uint(id), nil
}

// caller returns the authenticated identity. Routes using it are guarded by
// middleware.RequireAuth.
func caller(c echo.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		return auth.Identity{}, auth.ErrMissingToken
	}
	return id, nil
}

// bindAndValidate decodes the body over req and runs its struct rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
