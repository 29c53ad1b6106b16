package service

import (
	"stock-backtest/config"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/session"
	"stock-backtest/pkg/cache"
	"stock-backtest/pkg/logger"
)

type Service struct {
	AuthService      AuthService
	BacktestService  BacktestService
	ScannerService   ScannerService
	AccountService   AccountService
	SchedulerService SchedulerService

	Ledger     *TradeActionLedger
	Builder    *BacktestRequestBuilder
	Reconciler *TimeSeriesReconciler
	Presenter  *ResultPresenter
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	sess *session.Manager,
) *Service {
	ledger := NewTradeActionLedger()
	builder := NewBacktestRequestBuilder()
	scannerService := NewScannerService(cfg, log, inmemoryCache, repo.ScannerAPIRepo)

	return &Service{
		AuthService:      NewAuthService(log, repo.AuthAPIRepo, sess),
		BacktestService:  NewBacktestService(log, ledger, builder, repo.BacktestAPIRepo),
		ScannerService:   scannerService,
		AccountService:   NewAccountService(log, repo.AccountAPIRepo),
		SchedulerService: NewSchedulerService(cfg, log, repo.BacktestAPIRepo, scannerService),

		Ledger:     ledger,
		Builder:    builder,
		Reconciler: NewTimeSeriesReconciler(),
		Presenter:  NewResultPresenter(),
	}
}
