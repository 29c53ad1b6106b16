// Package http serves a mock of the stock-management platform API so the CLI
// can be developed and demoed without the real backend. Data is synthetic but
// deterministic per input.
package http

import (
	"net/http"
	"strings"
	"sync"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/middleware"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	log       *logger.Logger

	mu      sync.Mutex
	users   map[string]mockUser // keyed by email
	tokens  map[string]bool
	nextUID int64
}

type mockUser struct {
	userID   int64
	username string
	password string
}

func NewHttpAPIHandler(e *echo.Echo, validator *goValidator.Validate, log *logger.Logger) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      e,
		validator: validator,
		log:       log,
		users:     make(map[string]mockUser),
		tokens:    make(map[string]bool),
		nextUID:   1,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(middleware.NewRateLimiterMiddleware())

	base := h.echo.Group("/api")
	h.SetupAuth(base)
	h.SetupBacktest(base)
	h.SetupScanner(base)
	h.SetupAccount(base)
}

// requireToken guards every endpoint except the auth exchange and the
// liveness probe, mirroring the gateway's bearer contract.
func (h *HttpAPIHandler) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || !h.knownToken(token) {
			return c.JSON(http.StatusUnauthorized, dto.NewBaseResponse(http.StatusUnauthorized, "missing or invalid bearer token", nil))
		}
		return next(c)
	}
}

func (h *HttpAPIHandler) knownToken(token string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tokens[token]
}
