package repository

import (
	"context"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/ratelimit"
)

const (
	endpointAnalyze = "/api/backtest/analyze"
	endpointHealth  = "/api/backtest/health"
)

type BacktestAPIRepository interface {
	Analyze(ctx context.Context, req *dto.BacktestRequest) (*dto.AnalyzeResponse, error)
	Health(ctx context.Context) error
}

type backtestAPIRepository struct {
	log        *logger.Logger
	httpClient httpclient.HTTPClient
	limiter    *ratelimit.TokenLimiter
}

func NewBacktestAPIRepository(cfg *config.Config, log *logger.Logger, client httpclient.HTTPClient) *backtestAPIRepository {
	return &backtestAPIRepository{
		log:        log,
		httpClient: client,
		limiter:    ratelimit.NewTokenLimiter(cfg.API.MaxRequestPerMin),
	}
}

// Analyze submits a backtest request to the analytics service. One attempt per
// call; retry policy belongs to the user, not this client.
func (r *backtestAPIRepository) Analyze(ctx context.Context, req *dto.BacktestRequest) (*dto.AnalyzeResponse, error) {
	if err := r.limiter.Wait(ctx, 1); err != nil {
		return nil, err
	}

	var out dto.AnalyzeResponse
	resp, err := r.httpClient.Post(ctx, endpointAnalyze, req, nil, &out)
	if err := httpclient.CheckResponse(resp, err); err != nil {
		r.log.ErrorContext(ctx, "Backtest analyze request failed", logger.ErrorField(err))
		return nil, err
	}

	return &out, nil
}

func (r *backtestAPIRepository) Health(ctx context.Context) error {
	if err := r.limiter.Wait(ctx, 1); err != nil {
		return err
	}

	resp, err := r.httpClient.Get(ctx, endpointHealth, nil, nil, nil)
	return httpclient.CheckResponse(resp, err)
}
