package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-backtest/internal/dto"
)

func points(pairs ...interface{}) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, SeriesPoint{Date: pairs[i].(string), Value: pairs[i+1].(float64)})
	}
	return out
}

func TestTimeSeriesReconciler_Reconcile(t *testing.T) {
	reconciler := NewTimeSeriesReconciler()

	t.Run("union axis with absent markers", func(t *testing.T) {
		rows, err := reconciler.Reconcile([]Series{
			{Key: "A", Points: points("2024-01-01", 10.0, "2024-01-03", 12.0)},
			{Key: "B", Points: points("2024-01-02", 20.0, "2024-01-03", 21.0)},
		})
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "2024-01-01", rows[0].Date)
		require.NotNil(t, rows[0].Values["A"])
		assert.Equal(t, 10.0, *rows[0].Values["A"])
		assert.Nil(t, rows[0].Values["B"], "B has no sample on day one")

		assert.Equal(t, "2024-01-02", rows[1].Date)
		assert.Nil(t, rows[1].Values["A"])
		require.NotNil(t, rows[1].Values["B"])
		assert.Equal(t, 20.0, *rows[1].Values["B"])

		assert.Equal(t, "2024-01-03", rows[2].Date)
		require.NotNil(t, rows[2].Values["A"])
		require.NotNil(t, rows[2].Values["B"])
	})

	t.Run("absent values marshal as null, never zero", func(t *testing.T) {
		rows, err := reconciler.Reconcile([]Series{
			{Key: "A", Points: points("2024-01-01", 10.0)},
			{Key: "B", Points: points("2024-01-02", 20.0)},
		})
		require.NoError(t, err)

		raw, err := json.Marshal(rows[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2024-01-01","values":{"A":10,"B":null}}`, string(raw))
	})

	t.Run("deterministic across input order", func(t *testing.T) {
		a := Series{Key: "A", Points: points("2024-01-02", 1.0, "2024-01-01", 2.0)}
		b := Series{Key: "B", Points: points("2024-01-03", 3.0)}

		first, err := reconciler.Reconcile([]Series{a, b})
		require.NoError(t, err)
		second, err := reconciler.Reconcile([]Series{b, a})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []Series{
			{Key: "A", Points: points("2024-01-01", 10.0, "2024-01-03", 12.0)},
			{Key: "B", Points: points("2024-01-02", 20.0)},
		}
		rows, err := reconciler.Reconcile(input)
		require.NoError(t, err)

		// rebuild series from the output columns and reconcile again
		rebuilt := make([]Series, 0, 2)
		for _, key := range []string{"A", "B"} {
			var pts []SeriesPoint
			for _, row := range rows {
				if v := row.Values[key]; v != nil {
					pts = append(pts, SeriesPoint{Date: row.Date, Value: *v})
				}
			}
			rebuilt = append(rebuilt, Series{Key: key, Points: pts})
		}

		again, err := reconciler.Reconcile(rebuilt)
		require.NoError(t, err)
		assert.Equal(t, rows, again)
	})

	t.Run("empty input yields no rows", func(t *testing.T) {
		rows, err := reconciler.Reconcile(nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("series without points still gets a column", func(t *testing.T) {
		rows, err := reconciler.Reconcile([]Series{
			{Key: "A", Points: points("2024-01-01", 10.0)},
			{Key: "B"},
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Contains(t, rows[0].Values, "B")
		assert.Nil(t, rows[0].Values["B"])
	})

	t.Run("duplicate date within a series is rejected", func(t *testing.T) {
		_, err := reconciler.Reconcile([]Series{
			{Key: "A", Points: points("2024-01-01", 10.0, "2024-01-01", 11.0)},
		})
		var dupErr *DuplicateDateError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "A", dupErr.Key)
		assert.Equal(t, "2024-01-01", dupErr.Date)
	})
}

func TestSeriesProjections(t *testing.T) {
	history := []dto.PortfolioSnapshot{
		{Date: "2024-01-01", TotalValue: 100000},
		{Date: "2024-01-02", TotalValue: 100500},
	}
	portfolio := PortfolioSeries("portfolio", history)
	assert.Equal(t, "portfolio", portfolio.Key)
	require.Len(t, portfolio.Points, 2)
	assert.Equal(t, 100500.0, portfolio.Points[1].Value)

	prices := PriceSeries([]dto.StockPriceSeries{
		{Symbol: "2330", DataPoints: []dto.PricePoint{{Date: "2024-01-01", ClosePrice: 590}}},
	})
	require.Len(t, prices, 1)
	assert.Equal(t, "2330", prices[0].Key)
	assert.Equal(t, 590.0, prices[0].Points[0].Value)
}
