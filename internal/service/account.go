package service

import (
	"context"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/logger"
)

type AccountService interface {
	PortfolioPieChart(ctx context.Context) (*dto.PieChartResponse, error)
}

type accountService struct {
	log         *logger.Logger
	accountRepo repository.AccountAPIRepository
}

func NewAccountService(log *logger.Logger, accountRepo repository.AccountAPIRepository) *accountService {
	return &accountService{log: log, accountRepo: accountRepo}
}

func (s *accountService) PortfolioPieChart(ctx context.Context) (*dto.PieChartResponse, error) {
	return s.accountRepo.GetPortfolioPieChart(ctx)
}
