package dto

// ChartSlice is one position slice of the portfolio pie chart.
type ChartSlice struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color,omitempty"`
}

// PieChartResponse is returned by GET /api/account/portfolio/pie-chart.
type PieChartResponse struct {
	TotalValue float64      `json:"totalValue"`
	Positions  []ChartSlice `json:"positions"`
}
