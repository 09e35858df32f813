package calculator

import (
	"math"
	"time"

	"StockScreener/internal/model"
)

var day0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func d(i int) time.Time { return day0.AddDate(0, 0, i) }

func f(v float64) *float64 { return &v }

func seriesOf(symbol string, closes ...float64) model.PriceSeries {
	obs := make([]model.PriceObservation, len(closes))
	for i, c := range closes {
		obs[i] = model.PriceObservation{Date: d(i), Close: c}
	}
	return model.PriceSeries{Symbol: symbol, Observations: obs}
}

func returnsOn(symbol string, byDay map[int]float64) model.ReturnSeries {
	rs := model.ReturnSeries{Symbol: symbol}
	for i := 0; i < 32; i++ {
		if v, ok := byDay[i]; ok {
			rs.Points = append(rs.Points, model.ReturnPoint{Date: d(i), Pct: v})
		}
	}
	return rs
}

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }
