package calculator

import (
	"fmt"
	"math"
	"sort"

	"StockScreener/internal/model"
)

// Normalize turns provider bars into a clean series. Bars without a usable
// close are dropped, the rest are sorted by date, and when a date repeats the
// later bar in provider order wins. The result must hold at least minLen+1
// observations, since the first one never yields a return.
func Normalize(symbol string, raw []model.RawBar, minLen int) (model.PriceSeries, error) {
	byDate := make(map[int64]int, len(raw))
	obs := make([]model.PriceObservation, 0, len(raw))
	for _, b := range raw {
		if b.Close == nil {
			continue
		}
		c := *b.Close
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			continue
		}
		day := model.CalendarDate(b.Time)
		key := day.Unix()
		if i, ok := byDate[key]; ok {
			obs[i].Close = c
			continue
		}
		byDate[key] = len(obs)
		obs = append(obs, model.PriceObservation{Date: day, Close: c})
	}

	// Ensure chronological order
	sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })

	if len(obs) == 0 || len(obs) < minLen+1 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s has %d clean observations, need %d",
			ErrInsufficientData, symbol, len(obs), minLen+1)
	}
	return model.PriceSeries{Symbol: symbol, Observations: obs}, nil
}

// Trailing keeps the last n+1 observations so that the derived returns
// cover exactly n sessions.
func Trailing(series model.PriceSeries, n int) (model.PriceSeries, error) {
	if n < 1 || series.Len() < n+1 {
		return model.PriceSeries{}, fmt.Errorf("%w: %s has %d observations, need %d",
			ErrInsufficientData, series.Symbol, series.Len(), n+1)
	}
	return model.PriceSeries{
		Symbol:       series.Symbol,
		Observations: series.Observations[series.Len()-n-1:],
	}, nil
}
