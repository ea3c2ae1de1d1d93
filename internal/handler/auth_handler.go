package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stjohns-golfday/golfday-api/internal/dto"
	"github.com/stjohns-golfday/golfday-api/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/login", h.Login)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.svc.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "signup failed")
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: token,
		User:        dto.AuthUser{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		User:        dto.AuthUser{ID: user.ID, Email: user.Email},
	})
}
