package service

import (
	"strconv"
	"strings"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"
)

// BacktestRequestBuilder turns raw form fields plus a ledger snapshot into a
// validated request. It has no state and no side effects.
type BacktestRequestBuilder struct{}

func NewBacktestRequestBuilder() *BacktestRequestBuilder {
	return &BacktestRequestBuilder{}
}

// ParseSymbols splits comma-separated input, trims whitespace, drops empties
// and de-duplicates while preserving first-seen order.
func ParseSymbols(symbolsText string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, raw := range strings.Split(symbolsText, ",") {
		symbol := strings.TrimSpace(raw)
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		out = append(out, symbol)
	}
	return out
}

// Build validates the form fields and the snapshot and assembles the request.
// The trade actions keep their insertion order; presentation order is a
// separate concern.
func (b *BacktestRequestBuilder) Build(symbolsText, startDate, endDate, initialCapitalText string, snapshot []model.TradeAction) (*dto.BacktestRequest, error) {
	symbols := ParseSymbols(symbolsText)
	if len(symbols) == 0 {
		return nil, ErrMissingSymbols
	}

	start, startErr := utils.ParseDate(startDate)
	end, endErr := utils.ParseDate(endDate)
	if startErr != nil || endErr != nil || start.After(end) {
		return nil, &InvalidDateRangeError{StartDate: startDate, EndDate: endDate}
	}

	capital, err := strconv.ParseFloat(strings.TrimSpace(initialCapitalText), 64)
	if err != nil || capital <= 0 {
		return nil, &InvalidCapitalError{Raw: initialCapitalText}
	}

	for _, entry := range snapshot {
		if !utils.ContainsString(symbols, entry.Symbol) {
			return nil, &InvalidTradeActionError{
				Field:  "symbol",
				Reason: entry.Symbol + " is not part of the requested symbols",
			}
		}

		date, err := utils.ParseDate(entry.Date)
		if err != nil || date.Before(start) || date.After(end) {
			return nil, &InvalidTradeActionError{
				Field:  "date",
				Reason: entry.Date + " falls outside the backtest window",
			}
		}
	}

	actions := make([]dto.TradeAction, 0, len(snapshot))
	for _, entry := range snapshot {
		actions = append(actions, dto.TradeAction{
			Date:   entry.Date,
			Symbol: entry.Symbol,
			Action: entry.Action,
			Shares: entry.Shares,
		})
	}

	return &dto.BacktestRequest{
		Symbols:        symbols,
		StartDate:      startDate,
		EndDate:        endDate,
		InitialCapital: capital,
		TradeActions:   actions,
	}, nil
}
