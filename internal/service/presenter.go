package service

import (
	"sort"

	"stock-backtest/internal/dto"
)

// Holding is one filtered position for display.
type Holding struct {
	Symbol string
	Shares int
}

// ResultPresenter derives display-ready aggregates from an analytics response
// without mutating it.
type ResultPresenter struct{}

func NewResultPresenter() *ResultPresenter {
	return &ResultPresenter{}
}

// LatestSnapshot returns the last snapshot of a chronologically-ordered
// history, or nil when the history is empty.
func (p *ResultPresenter) LatestSnapshot(history []dto.PortfolioSnapshot) *dto.PortfolioSnapshot {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}

// NonZeroHoldings filters the snapshot's holdings to positions with shares,
// ascending by symbol so repeated calls render identically.
func (p *ResultPresenter) NonZeroHoldings(snapshot *dto.PortfolioSnapshot) []Holding {
	if snapshot == nil {
		return nil
	}

	out := make([]Holding, 0, len(snapshot.Holdings))
	for symbol, shares := range snapshot.Holdings {
		if shares > 0 {
			out = append(out, Holding{Symbol: symbol, Shares: shares})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// InvestedValue is the portion of the portfolio held in instruments.
func (p *ResultPresenter) InvestedValue(snapshot *dto.PortfolioSnapshot) float64 {
	if snapshot == nil {
		return 0
	}
	return snapshot.TotalValue - snapshot.Cash
}

// SignClass classifies a value for coloring; zero counts as positive.
func (p *ResultPresenter) SignClass(value float64) string {
	if value >= 0 {
		return dto.SignPositive
	}
	return dto.SignNegative
}
