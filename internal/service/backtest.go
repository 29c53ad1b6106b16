package service

import (
	"context"
	"sync/atomic"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/logger"
)

// BacktestForm is the raw form state of one submission attempt.
type BacktestForm struct {
	Symbols        string
	StartDate      string
	EndDate        string
	InitialCapital string
}

type BacktestService interface {
	Submit(ctx context.Context, form BacktestForm) (*dto.AnalyzeResponse, error)
	Health(ctx context.Context) error
}

type backtestService struct {
	log          *logger.Logger
	ledger       *TradeActionLedger
	builder      *BacktestRequestBuilder
	backtestRepo repository.BacktestAPIRepository
	inFlight     atomic.Bool
}

func NewBacktestService(log *logger.Logger, ledger *TradeActionLedger, builder *BacktestRequestBuilder, backtestRepo repository.BacktestAPIRepository) *backtestService {
	return &backtestService{
		log:          log,
		ledger:       ledger,
		builder:      builder,
		backtestRepo: backtestRepo,
	}
}

// Submit validates the form against a snapshot of the ledger and sends one
// analyze request. While a submission is outstanding a second one is rejected,
// never queued. The snapshot is taken at build time, so ledger mutations made
// while the request is in flight cannot corrupt it. Cancelling ctx aborts the
// call and frees the slot.
func (s *backtestService) Submit(ctx context.Context, form BacktestForm) (*dto.AnalyzeResponse, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	req, err := s.builder.Build(form.Symbols, form.StartDate, form.EndDate, form.InitialCapital, s.ledger.Snapshot())
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Submitting backtest",
		logger.Field("symbols", req.Symbols),
		logger.StringField("start_date", req.StartDate),
		logger.StringField("end_date", req.EndDate),
		logger.IntField("trade_actions", len(req.TradeActions)),
	)

	result, err := s.backtestRepo.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Backtest completed",
		logger.Float64Field("final_value", result.FinalValue),
		logger.IntField("trading_days", result.TradingDays),
	)
	return result, nil
}

func (s *backtestService) Health(ctx context.Context) error {
	return s.backtestRepo.Health(ctx)
}
