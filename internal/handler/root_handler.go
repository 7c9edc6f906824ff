package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serviceName = "restaurant-service"

// RegisterRootRoutes mounts the API overview and the health probe.
func RegisterRootRoutes(e *echo.Echo) {
	e.GET("/", Overview)
	e.GET("/health/", Health)
}

func Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Welcome to the Restaurant API",
		"endpoints": map[string]string{
			"menu":          "/menu/",
			"menu_featured": "/menu/featured/",
			"categories":    "/menu/categories/",
			"by_category":   "/menu/category/{name}/",
			"booking":       "/booking/",
			"profile":       "/profile/",
			"token":         "/api/token/",
			"token_refresh": "/api/token/refresh/",
		},
	})
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}
