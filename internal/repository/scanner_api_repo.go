package repository

import (
	"context"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/httpclient"
	"stock-backtest/pkg/logger"
)

const endpointScannerData = "/api/scanner/data"

type ScannerAPIRepository interface {
	GetData(ctx context.Context, req dto.ScannerRequest) (*dto.ScannerResponse, error)
}

type scannerAPIRepository struct {
	log        *logger.Logger
	httpClient httpclient.HTTPClient
}

func NewScannerAPIRepository(log *logger.Logger, client httpclient.HTTPClient) *scannerAPIRepository {
	return &scannerAPIRepository{log: log, httpClient: client}
}

func (r *scannerAPIRepository) GetData(ctx context.Context, req dto.ScannerRequest) (*dto.ScannerResponse, error) {
	var out dto.ScannerResponse
	resp, err := r.httpClient.Post(ctx, endpointScannerData, req, nil, &out)
	if err := httpclient.CheckResponse(resp, err); err != nil {
		r.log.ErrorContext(ctx, "Scanner data request failed",
			logger.StringField("scanner_type", req.ScannerType), logger.ErrorField(err))
		return nil, err
	}
	return &out, nil
}
