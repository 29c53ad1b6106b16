package http

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"stock-backtest/internal/dto"
)

func (h *HttpAPIHandler) SetupAccount(base *echo.Group) {
	accountGroup := base.Group("/account")
	accountGroup.GET("/portfolio/pie-chart", h.portfolioPieChart, h.requireToken)
}

func (h *HttpAPIHandler) portfolioPieChart(c echo.Context) error {
	positions := []struct {
		label string
		value float64
	}{
		{"2330", 580_000},
		{"0050", 240_000},
		{"2454", 130_000},
		{"Cash", 50_000},
	}

	var total float64
	for _, p := range positions {
		total += p.value
	}

	slices := make([]dto.ChartSlice, 0, len(positions))
	for _, p := range positions {
		slices = append(slices, dto.ChartSlice{
			Label:      p.label,
			Value:      p.value,
			Percentage: roundTo(p.value/total*100, 2),
		})
	}

	return c.JSON(http.StatusOK, dto.PieChartResponse{
		TotalValue: total,
		Positions:  slices,
	})
}

// roundTo rounds to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
