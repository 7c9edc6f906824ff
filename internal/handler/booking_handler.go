package handler

import (
	"net/http"

	"github.com/Eursukkul/restaurant-service/internal/dto"
	"github.com/Eursukkul/restaurant-service/internal/middleware"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc      service.BookingService
	pageSize int
}

func NewBookingHandler(svc service.BookingService, pageSize int) *BookingHandler {
	return &BookingHandler{svc: svc, pageSize: pageSize}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/booking", middleware.RequireAuth)
	bookings.GET("/", h.ListBookings)
	bookings.POST("/", h.CreateBooking)
	bookings.GET("/:id/", h.GetBooking)
	bookings.PUT("/:id/", h.UpdateBooking)
	bookings.PATCH("/:id/", h.PatchBooking)
	bookings.DELETE("/:id/", h.DeleteBooking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	number, err := pageNumber(c)
	if err != nil {
		return err
	}

	bookings, total, err := h.svc.ListBookings(c.Request().Context(), who, pageWindow(number, h.pageSize))
	if err != nil {
		return err
	}

	resp, err := paginate(c, dto.ToBookingResponses(bookings), total, number, h.pageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	var req dto.BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), who, req.Input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), who, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	return h.update(c, false)
}

func (h *BookingHandler) PatchBooking(c echo.Context) error {
	return h.update(c, true)
}

func (h *BookingHandler) update(c echo.Context, partial bool) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	existing, err := h.svc.GetBooking(c.Request().Context(), who, id)
	if err != nil {
		return err
	}

	var req dto.BookingRequest
	if partial {
		req = dto.BookingRequestFrom(existing)
	}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), who, id, req.Input(), partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), who, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
