package cli

import (
	"context"
	"fmt"
	"strings"

	"stock-backtest/internal/service"
	"stock-backtest/pkg/utils"
)

// ParseTradeSpec parses one "date:symbol:action:shares" flag value, e.g.
// "2024-01-15:2330:BUY:100". Validation beyond the shape is the ledger's job.
func ParseTradeSpec(spec string) (service.TradeActionInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return service.TradeActionInput{}, fmt.Errorf("trade %q must be date:symbol:action:shares", spec)
	}
	return service.TradeActionInput{
		Date:   parts[0],
		Symbol: parts[1],
		Action: parts[2],
		Shares: parts[3],
	}, nil
}

// RunBacktest loads the trade specs into the ledger, submits the form and
// renders the full result: summary, latest snapshot, holdings and the merged
// value/price table.
func (h *CLIHandler) RunBacktest(ctx context.Context, form service.BacktestForm, tradeSpecs []string) error {
	if err := h.requireSession(); err != nil {
		return err
	}

	for _, spec := range tradeSpecs {
		in, err := ParseTradeSpec(spec)
		if err != nil {
			return err
		}
		if _, err := h.service.Ledger.Add(in); err != nil {
			return fmt.Errorf("trade %q: %w", spec, err)
		}
	}

	if h.service.Ledger.Len() > 0 {
		fmt.Fprintln(h.out, "Trade actions:")
		h.renderLedger(h.service.Ledger.SortedView())
	}

	result, err := h.service.BacktestService.Submit(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s\n\n", result.Message)
	h.renderBacktestSummary(&result.BacktestResult)

	latest := h.service.Presenter.LatestSnapshot(result.PortfolioHistory)
	if latest != nil {
		fmt.Fprintf(h.out, "\nFinal snapshot (%s): cash %s, invested %s\n",
			latest.Date,
			utils.FormatMoney(latest.Cash),
			utils.FormatMoney(h.service.Presenter.InvestedValue(latest)),
		)
		if holdings := h.service.Presenter.NonZeroHoldings(latest); len(holdings) > 0 {
			h.renderHoldings(holdings)
		}
	}

	series := append(
		[]service.Series{service.PortfolioSeries("portfolio", result.PortfolioHistory)},
		service.PriceSeries(result.StockPrices)...,
	)
	rows, err := h.service.Reconciler.Reconcile(series)
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "\nDaily values:")
	h.renderReconciledRows(series, rows)

	h.service.Ledger.Reset()
	return nil
}

func (h *CLIHandler) Health(ctx context.Context) error {
	if err := h.service.BacktestService.Health(ctx); err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Backtest service is UP")
	return nil
}
