package service

import (
	"sort"

	"stock-backtest/internal/dto"
)

type SeriesPoint struct {
	Date  string
	Value float64
}

// Series is one named, independently-sampled time series.
type Series struct {
	Key    string
	Points []SeriesPoint
}

// ReconciledRow is one date on the shared axis. A nil value means the series
// has no sample that day; it marshals as JSON null so consumers can tell
// "no data" apart from zero.
type ReconciledRow struct {
	Date   string              `json:"date"`
	Values map[string]*float64 `json:"values"`
}

// TimeSeriesReconciler merges series sampled on different date sets onto one
// ascending date axis. Missing samples stay missing: no interpolation, no
// forward-fill, no zero-fill.
type TimeSeriesReconciler struct{}

func NewTimeSeriesReconciler() *TimeSeriesReconciler {
	return &TimeSeriesReconciler{}
}

// Reconcile is deterministic and idempotent: the same inputs always produce
// the same rows, and reconciling the output's columns reproduces them.
func (r *TimeSeriesReconciler) Reconcile(series []Series) ([]ReconciledRow, error) {
	samples := make(map[string]map[string]float64, len(series))
	dateSet := make(map[string]struct{})

	for _, s := range series {
		byDate := make(map[string]float64, len(s.Points))
		for _, p := range s.Points {
			if _, dup := byDate[p.Date]; dup {
				return nil, &DuplicateDateError{Key: s.Key, Date: p.Date}
			}
			byDate[p.Date] = p.Value
			dateSet[p.Date] = struct{}{}
		}
		samples[s.Key] = byDate
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([]ReconciledRow, 0, len(dates))
	for _, d := range dates {
		values := make(map[string]*float64, len(series))
		for _, s := range series {
			if v, ok := samples[s.Key][d]; ok {
				v := v
				values[s.Key] = &v
			} else {
				values[s.Key] = nil
			}
		}
		rows = append(rows, ReconciledRow{Date: d, Values: values})
	}

	return rows, nil
}

// PortfolioSeries projects the portfolio history's total value as a series.
func PortfolioSeries(key string, history []dto.PortfolioSnapshot) Series {
	points := make([]SeriesPoint, 0, len(history))
	for _, snapshot := range history {
		points = append(points, SeriesPoint{Date: snapshot.Date, Value: snapshot.TotalValue})
	}
	return Series{Key: key, Points: points}
}

// PriceSeries converts per-instrument close prices into reconciler input.
func PriceSeries(prices []dto.StockPriceSeries) []Series {
	out := make([]Series, 0, len(prices))
	for _, stock := range prices {
		points := make([]SeriesPoint, 0, len(stock.DataPoints))
		for _, p := range stock.DataPoints {
			points = append(points, SeriesPoint{Date: p.Date, Value: p.ClosePrice})
		}
		out = append(out, Series{Key: stock.Symbol, Points: points})
	}
	return out
}
