package calculator

import (
	"fmt"

	"StockScreener/internal/model"
)

// Returns computes day-over-day percentage returns. The first observation
// has no predecessor and produces no entry.
func Returns(series model.PriceSeries) (model.ReturnSeries, error) {
	n := series.Len()
	if n < 2 {
		return model.ReturnSeries{}, fmt.Errorf("%w: %s needs at least 2 observations for returns, has %d",
			ErrInsufficientData, series.Symbol, n)
	}
	points := make([]model.ReturnPoint, 0, n-1)
	for i := 1; i < n; i++ {
		prev := series.Observations[i-1]
		cur := series.Observations[i]
		points = append(points, model.ReturnPoint{
			Date: cur.Date,
			Pct:  PercentChange(prev.Close, cur.Close),
		})
	}
	return model.ReturnSeries{Symbol: series.Symbol, Points: points}, nil
}
