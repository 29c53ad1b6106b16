package cli

import (
	"context"
	"fmt"
	"sort"

	"stock-backtest/internal/dto"
)

// Scanner fetches one ranking, or every known ranking when scannerType is
// "all", and renders the rows.
func (h *CLIHandler) Scanner(ctx context.Context, scannerType, date string, count int, ascending bool) error {
	if err := h.requireSession(); err != nil {
		return err
	}

	if scannerType == "all" {
		results, err := h.service.ScannerService.GetMany(ctx, dto.ScannerTypes(), date, count, ascending)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(results))
		for key := range results {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			h.renderScannerResponse(results[key])
			fmt.Fprintln(h.out)
		}
		return nil
	}

	resp, err := h.service.ScannerService.Get(ctx, dto.ScannerRequest{
		ScannerType: scannerType,
		Date:        date,
		Count:       count,
		Ascending:   ascending,
	})
	if err != nil {
		return err
	}

	h.renderScannerResponse(resp)
	return nil
}
