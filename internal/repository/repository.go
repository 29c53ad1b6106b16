package repository

import (
	"stock-backtest/config"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
)

type Repository struct {
	AuthAPIRepo     AuthAPIRepository
	BacktestAPIRepo BacktestAPIRepository
	ScannerAPIRepo  ScannerAPIRepository
	AccountAPIRepo  AccountAPIRepository
	SessionRepo     SessionRepository
}

// NewRepository wires every remote endpoint behind one shared HTTP client.
// The session repository is created by the caller because the token provider
// feeding the client is itself backed by it.
func NewRepository(cfg *config.Config, log *logger.Logger, tokens httpclient.TokenProvider, sessionRepo SessionRepository) *Repository {
	client := httpclient.New(cfg.API.BaseURL, cfg.API.Timeout, tokens)

	return &Repository{
		AuthAPIRepo:     NewAuthAPIRepository(log, client),
		BacktestAPIRepo: NewBacktestAPIRepository(cfg, log, client),
		ScannerAPIRepo:  NewScannerAPIRepository(log, client),
		AccountAPIRepo:  NewAccountAPIRepository(log, client),
		SessionRepo:     sessionRepo,
	}
}
