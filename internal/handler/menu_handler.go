package handler

import (
	"net/http"

	"github.com/Eursukkul/restaurant-service/internal/dto"
	"github.com/Eursukkul/restaurant-service/internal/middleware"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	svc      service.MenuService
	pageSize int
}

func NewMenuHandler(svc service.MenuService, pageSize int) *MenuHandler {
	return &MenuHandler{svc: svc, pageSize: pageSize}
}

// RegisterRoutes mounts the catalog. Reads are open; writes need a caller.
func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	menu := e.Group("/menu", middleware.RequireAuthFor(
		http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	))
	menu.GET("/", h.ListMenuItems)
	menu.POST("/", h.CreateMenuItem)
	menu.GET("/featured/", h.Featured)
	menu.GET("/categories/", h.Categories)
	menu.GET("/category/:name/", h.ByCategory)
	menu.GET("/:id/", h.GetMenuItem)
	menu.PUT("/:id/", h.UpdateMenuItem)
	menu.PATCH("/:id/", h.PatchMenuItem)
	menu.DELETE("/:id/", h.DeleteMenuItem)
}

func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	number, err := pageNumber(c)
	if err != nil {
		return err
	}

	items, total, err := h.svc.ListMenuItems(c.Request().Context(), pageWindow(number, h.pageSize))
	if err != nil {
		return err
	}

	resp, err := paginate(c, dto.ToMenuItemResponses(items), total, number, h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	req := dto.NewMenuItemRequest()
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.svc.CreateMenuItem(c.Request().Context(), req.Input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToMenuItemResponse(item))
}

func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.svc.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	// The item must exist before the body is judged.
	if _, err := h.svc.GetMenuItem(c.Request().Context(), id); err != nil {
		return err
	}

	req := dto.NewMenuItemRequest()
	return h.update(c, id, &req)
}

func (h *MenuHandler) PatchMenuItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.svc.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	req := dto.MenuItemRequestFrom(item)
	return h.update(c, id, &req)
}

func (h *MenuHandler) update(c echo.Context, id uint, req *dto.MenuItemRequest) error {
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	item, err := h.svc.UpdateMenuItem(c.Request().Context(), id, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToMenuItemResponse(item))
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MenuHandler) Featured(c echo.Context) error {
	items, err := h.svc.FeaturedItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToMenuItemResponses(items))
}

func (h *MenuHandler) Categories(c echo.Context) error {
	categories, err := h.svc.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *MenuHandler) ByCategory(c echo.Context) error {
	items, err := h.svc.ItemsByCategory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToMenuItemResponses(items))
}
