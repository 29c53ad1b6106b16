package dto

// TradeAction is a single dated buy/sell instruction inside a backtest request.
type TradeAction struct {
	Date   string `json:"date" validate:"required"`
	Symbol string `json:"symbol" validate:"required"`
	Action string `json:"action" validate:"required,oneof=BUY SELL"`
	Shares int    `json:"shares" validate:"required,gt=0"`
}

// BacktestRequest defines the parameters for one simulation run. It is built
// once per submission and never mutated afterwards.
type BacktestRequest struct {
	Symbols        []string      `json:"symbols" validate:"required,min=1"`
	StartDate      string        `json:"startDate" validate:"required"`
	EndDate        string        `json:"endDate" validate:"required"`
	InitialCapital float64       `json:"initialCapital" validate:"required,gt=0"`
	TradeActions   []TradeAction `json:"tradeActions" validate:"dive"`
}

// BacktestResult is the aggregate outcome computed by the analytics service.
// All magnitudes are taken as-is; no invariants are enforced locally.
type BacktestResult struct {
	Message               string  `json:"message,omitempty"`
	InitialCapital        float64 `json:"initialCapital"`
	FinalValue            float64 `json:"finalValue"`
	TotalReturn           float64 `json:"totalReturn"`
	ReturnRate            float64 `json:"returnRate"`
	AnnualizedSharpeRatio float64 `json:"annualizedSharpeRatio"`
	MaxDrawdown           float64 `json:"maxDrawdown"`
	TradingDays           int     `json:"tradingDays"`
}

// PortfolioSnapshot is a dated valuation of the simulated portfolio.
// DailyReturn is nil on days without a prior reference value.
type PortfolioSnapshot struct {
	Date        string         `json:"date"`
	TotalValue  float64        `json:"totalValue"`
	Cash        float64        `json:"cash"`
	Holdings    map[string]int `json:"holdings"`
	DailyReturn *float64       `json:"dailyReturn"`
}

type PricePoint struct {
	Date       string  `json:"date"`
	ClosePrice float64 `json:"closePrice"`
}

// StockPriceSeries holds close prices for one instrument, ascending by date.
type StockPriceSeries struct {
	Symbol     string       `json:"symbol"`
	DataPoints []PricePoint `json:"dataPoints"`
}

// AnalyzeResponse is the payload of POST /api/backtest/analyze.
type AnalyzeResponse struct {
	BacktestResult
	PortfolioHistory []PortfolioSnapshot `json:"portfolioHistory"`
	StockPrices      []StockPriceSeries  `json:"stockPrices,omitempty"`
}
