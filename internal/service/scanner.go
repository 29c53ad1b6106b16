package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"stock-backtest/config"
	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
	"stock-backtest/pkg/cache"
	"stock-backtest/pkg/logger"
	"stock-backtest/pkg/utils"
)

const maxConcurrentScannerFetches = 3

type ScannerService interface {
	Get(ctx context.Context, req dto.ScannerRequest) (*dto.ScannerResponse, error)
	GetMany(ctx context.Context, scannerTypes []string, date string, count int, ascending bool) (map[string]*dto.ScannerResponse, error)
}

type scannerService struct {
	cfg           *config.Config
	log           *logger.Logger
	inmemoryCache cache.Cache
	scannerRepo   repository.ScannerAPIRepository
}

func NewScannerService(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, scannerRepo repository.ScannerAPIRepository) *scannerService {
	return &scannerService{
		cfg:           cfg,
		log:           log,
		inmemoryCache: inmemoryCache,
		scannerRepo:   scannerRepo,
	}
}

// Get fetches one ranking, serving repeated requests from the cache.
func (s *scannerService) Get(ctx context.Context, req dto.ScannerRequest) (*dto.ScannerResponse, error) {
	if !utils.ContainsString(dto.ScannerTypes(), req.ScannerType) {
		return nil, &UnknownScannerTypeError{ScannerType: req.ScannerType}
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, fmt.Errorf("scanner date must be a calendar date (YYYY-MM-DD): %w", err)
	}
	if req.Count <= 0 {
		req.Count = 100
	}

	key := scannerCacheKey(req)
	if cached, ok := cache.TypedGet[*dto.ScannerResponse](s.inmemoryCache, key); ok {
		return cached, nil
	}

	resp, err := s.scannerRepo.GetData(ctx, req)
	if err != nil {
		return nil, err
	}

	s.inmemoryCache.Set(key, resp, s.cfg.Cache.DefaultExpiration)
	return resp, nil
}

// GetMany fans the requested rankings out concurrently; one failing ranking
// fails the whole call.
func (s *scannerService) GetMany(ctx context.Context, scannerTypes []string, date string, count int, ascending bool) (map[string]*dto.ScannerResponse, error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScannerFetches)

	var mu sync.Mutex
	out := make(map[string]*dto.ScannerResponse, len(scannerTypes))

	for _, scannerType := range scannerTypes {
		scannerType := scannerType
		g.Go(func() error {
			resp, err := s.Get(gCtx, dto.ScannerRequest{
				ScannerType: scannerType,
				Date:        date,
				Count:       count,
				Ascending:   ascending,
			})
			if err != nil {
				s.log.ErrorContext(gCtx, "Scanner fetch failed",
					logger.StringField("scanner_type", scannerType), logger.ErrorField(err))
				return err
			}

			mu.Lock()
			out[scannerType] = resp
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func scannerCacheKey(req dto.ScannerRequest) string {
	return fmt.Sprintf("scanner:%s:%s:%d:%t", req.ScannerType, req.Date, req.Count, req.Ascending)
}
