package http

import (
	"hash/fnv"
	"math"
	"math/rand"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/utils"
)

// simulateAnalyze produces a deterministic synthetic response for a validated
// request: seeded price walks per symbol and straightforward bookkeeping of
// the trade actions. Weekends carry no samples, so downstream consumers see
// genuine gaps. This is a development stub, not the analytics engine.
func simulateAnalyze(req *dto.BacktestRequest) *dto.AnalyzeResponse {
	start, _ := utils.ParseDate(req.StartDate)
	end, _ := utils.ParseDate(req.EndDate)

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if utils.IsWeekend(d) {
			continue
		}
		days = append(days, utils.FormatDate(d))
	}

	closes := make(map[string][]float64, len(req.Symbols))
	stockPrices := make([]dto.StockPriceSeries, 0, len(req.Symbols))
	for _, symbol := range req.Symbols {
		seed := symbolSeed(symbol)
		rng := rand.New(rand.NewSource(int64(seed)))
		price := 40 + float64(seed%400)

		points := make([]dto.PricePoint, 0, len(days))
		series := make([]float64, 0, len(days))
		for _, day := range days {
			price = math.Round(price*(1+(rng.Float64()-0.48)*0.02)*100) / 100
			series = append(series, price)
			points = append(points, dto.PricePoint{Date: day, ClosePrice: price})
		}
		closes[symbol] = series
		stockPrices = append(stockPrices, dto.StockPriceSeries{Symbol: symbol, DataPoints: points})
	}

	tradesByDate := make(map[string][]dto.TradeAction)
	for _, trade := range req.TradeActions {
		tradesByDate[trade.Date] = append(tradesByDate[trade.Date], trade)
	}

	cash := req.InitialCapital
	holdings := make(map[string]int, len(req.Symbols))
	for _, symbol := range req.Symbols {
		holdings[symbol] = 0
	}

	history := make([]dto.PortfolioSnapshot, 0, len(days))
	var dailyReturns []float64
	prevTotal := 0.0

	for i, day := range days {
		// trades dated on a non-trading day never execute
		for _, trade := range tradesByDate[day] {
			price := closes[trade.Symbol][i]
			switch trade.Action {
			case dto.ActionBuy:
				cost := price * float64(trade.Shares)
				if cost <= cash {
					cash -= cost
					holdings[trade.Symbol] += trade.Shares
				}
			case dto.ActionSell:
				if holdings[trade.Symbol] >= trade.Shares {
					holdings[trade.Symbol] -= trade.Shares
					cash += price * float64(trade.Shares)
				}
			}
		}

		total := cash
		for symbol, shares := range holdings {
			total += closes[symbol][i] * float64(shares)
		}

		var dailyReturn *float64
		if i > 0 && prevTotal != 0 {
			r := (total - prevTotal) / prevTotal
			dailyReturn = &r
			dailyReturns = append(dailyReturns, r)
		}

		history = append(history, dto.PortfolioSnapshot{
			Date:        day,
			TotalValue:  total,
			Cash:        cash,
			Holdings:    copyHoldings(holdings),
			DailyReturn: dailyReturn,
		})
		prevTotal = total
	}

	finalValue := req.InitialCapital
	if len(history) > 0 {
		finalValue = history[len(history)-1].TotalValue
	}
	totalReturn := finalValue - req.InitialCapital

	return &dto.AnalyzeResponse{
		BacktestResult: dto.BacktestResult{
			Message:               "Backtest completed successfully",
			InitialCapital:        req.InitialCapital,
			FinalValue:            finalValue,
			TotalReturn:           totalReturn,
			ReturnRate:            totalReturn / req.InitialCapital * 100,
			AnnualizedSharpeRatio: annualizedSharpe(dailyReturns),
			MaxDrawdown:           maxDrawdown(history),
			TradingDays:           len(days),
		},
		PortfolioHistory: history,
		StockPrices:      stockPrices,
	}
}

func symbolSeed(symbol string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return h.Sum32()
}

func copyHoldings(holdings map[string]int) map[string]int {
	out := make(map[string]int, len(holdings))
	for symbol, shares := range holdings {
		out[symbol] = shares
	}
	return out
}

func annualizedSharpe(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)

	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return mean / std * math.Sqrt(252)
}

func maxDrawdown(history []dto.PortfolioSnapshot) float64 {
	var peak, worst float64
	for _, snapshot := range history {
		if snapshot.TotalValue > peak {
			peak = snapshot.TotalValue
		}
		if peak > 0 {
			if dd := (peak - snapshot.TotalValue) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst * 100
}
