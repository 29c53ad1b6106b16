package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

type SchedulerService interface {
	Run(ctx context.Context) error
}

// schedulerService probes the analytics service and keeps the scanner cache
// warm on a cron schedule. It is the monitor-mode loop of the CLI.
type schedulerService struct {
	cfg            *config.Config
	log            *logger.Logger
	cronParser     cron.Parser
	backtestRepo   repository.BacktestAPIRepository
	scannerService ScannerService
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, backtestRepo repository.BacktestAPIRepository, scannerService ScannerService) *schedulerService {
	return &schedulerService{
		cfg:            cfg,
		log:            log,
		cronParser:     cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		backtestRepo:   backtestRepo,
		scannerService: scannerService,
	}
}

// Run blocks until ctx is done, firing one tick per cron occurrence. The first
// tick runs immediately so a freshly started monitor reports right away.
func (s *schedulerService) Run(ctx context.Context) error {
	schedule, err := s.cronParser.Parse(s.cfg.Scheduler.CronExpression)
	if err != nil {
		return fmt.Errorf("failed to parse cron expression %q: %w", s.cfg.Scheduler.CronExpression, err)
	}

	s.log.Info("Monitor started",
		logger.StringField("cron", s.cfg.Scheduler.CronExpression))

	s.tick(ctx)

	for {
		next := schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("Monitor stopped")
			return nil
		case <-timer.C:
			s.tick(ctx)
		}
	}
}

func (s *schedulerService) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, s.cfg.Scheduler.TimeoutDuration)
	defer cancel()

	if err := s.backtestRepo.Health(tickCtx); err != nil {
		s.log.WarnContext(tickCtx, "Analytics service health probe failed", logger.ErrorField(err))
	} else {
		s.log.InfoContext(tickCtx, "Analytics service is healthy")
	}

	rankings, err := s.scannerService.GetMany(tickCtx, dto.ScannerTypes(), utils.Today(), s.cfg.Scheduler.ScannerCount, false)
	if err != nil {
		s.log.WarnContext(tickCtx, "Scanner cache refresh failed", logger.ErrorField(err))
		return
	}

	s.log.InfoContext(tickCtx, "Scanner cache refreshed", logger.IntField("rankings", len(rankings)))
}
