package repository

import (
	"context"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
)

const endpointPieChart = "/api/account/portfolio/pie-chart"

type AccountAPIRepository interface {
	GetPortfolioPieChart(ctx context.Context) (*dto.PieChartResponse, error)
}

type accountAPIRepository struct {
	log        *logger.Logger
	httpClient httpclient.HTTPClient
}

func NewAccountAPIRepository(log *logger.Logger, client httpclient.HTTPClient) *accountAPIRepository {
	return &accountAPIRepository{log: log, httpClient: client}
}

func (r *accountAPIRepository) GetPortfolioPieChart(ctx context.Context) (*dto.PieChartResponse, error) {
	var out dto.PieChartResponse
	resp, err := r.httpClient.Get(ctx, endpointPieChart, nil, nil, &out)
	if err := httpclient.CheckResponse(resp, err); err != nil {
		r.log.ErrorContext(ctx, "Portfolio pie-chart request failed", logger.ErrorField(err))
		return nil, err
	}
	return &out, nil
}
