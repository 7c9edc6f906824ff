package handler

import (
	"net/http"

	"github.com/Eursukkul/restaurant-service/internal/dto"
	"github.com/Eursukkul/restaurant-service/internal/middleware"
	"github.com/Eursukkul/restaurant-service/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/token/", h.ObtainToken)
	e.POST("/api/token/refresh/", h.RefreshToken)
	e.GET("/profile/", h.Profile, middleware.RequireAuth)
}

func (h *AuthHandler) ObtainToken(c echo.Context) error {
	var req dto.TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.svc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	access, err := h.svc.Refresh(c.Request().Context(), req.Refresh)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TokenRefreshResponse{Access: access})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	user, err := h.svc.Profile(c.Request().Context(), who.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}
