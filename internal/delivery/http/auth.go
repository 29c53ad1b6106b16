package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stock-backtest/internal/dto"
)

func (h *HttpAPIHandler) SetupAuth(base *echo.Group) {
	authGroup := base.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
}

func (h *HttpAPIHandler) register(c echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	h.mu.Lock()
	if _, exists := h.users[req.Email]; exists {
		h.mu.Unlock()
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("email is already registered"))
	}

	user := mockUser{userID: h.nextUID, username: req.Username, password: req.Password}
	h.nextUID++
	h.users[req.Email] = user

	token := uuid.NewString()
	h.tokens[token] = true
	h.mu.Unlock()

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		UserProfile: dto.UserProfile{
			UserID:   user.userID,
			Username: user.username,
			Email:    req.Email,
		},
	})
}

func (h *HttpAPIHandler) login(c echo.Context) error {
	req := new(dto.LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	h.mu.Lock()
	user, exists := h.users[req.Email]
	if !exists || user.password != req.Password {
		h.mu.Unlock()
		return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "invalid credentials", nil))
	}

	token := uuid.NewString()
	h.tokens[token] = true
	h.mu.Unlock()

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		UserProfile: dto.UserProfile{
			UserID:   user.userID,
			Username: user.username,
			Email:    req.Email,
		},
	})
}
