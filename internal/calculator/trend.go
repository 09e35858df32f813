package calculator

import (
	"fmt"

	"StockScreener/internal/model"
)

// Trendline fits returns against their session index (0, 1, ...) by
// ordinary least squares.
func Trendline(returns model.ReturnSeries) (model.Trend, error) {
	n := len(returns.Points)
	if n < 2 {
		return model.Trend{}, fmt.Errorf("%w: trendline needs at least 2 returns, have %d", ErrInsufficientData, n)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := returns.Values()

	meanX, _ := Mean(xs)
	meanY, _ := Mean(ys)
	var sxy, sxx float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxy += dx * (ys[i] - meanY)
		sxx += dx * dx
	}
	slope := sxy / sxx
	return model.Trend{Slope: slope, Intercept: meanY - slope*meanX}, nil
}
