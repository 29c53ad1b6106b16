package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

func (h *HttpAPIHandler) SetupBacktest(base *echo.Group) {
	backtestGroup := base.Group("/backtest")
	backtestGroup.POST("/analyze", h.analyze, h.requireToken)
	backtestGroup.GET("/health", h.health)
}

func (h *HttpAPIHandler) analyze(c echo.Context) error {
	req := new(dto.BacktestRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	start, startErr := utils.ParseDate(req.StartDate)
	end, endErr := utils.ParseDate(req.EndDate)
	if startErr != nil || endErr != nil || start.After(end) {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("startDate and endDate must be calendar dates with startDate <= endDate"))
	}

	for _, trade := range req.TradeActions {
		if !utils.ContainsString(req.Symbols, trade.Symbol) {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("trade action symbol "+trade.Symbol+" is not part of the requested symbols"))
		}
	}

	result := simulateAnalyze(req)

	h.log.InfoContext(c.Request().Context(), "Served mock backtest",
		logger.Field("symbols", req.Symbols),
		logger.IntField("trading_days", result.TradingDays),
	)

	return c.JSON(http.StatusOK, result)
}

func (h *HttpAPIHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}
