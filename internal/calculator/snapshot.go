package calculator

import (
	"fmt"

	"StockScreener/internal/model"
)

// Standard horizon labels.
const (
	LabelPriorDay   = "Prior Day"
	LabelPriorMonth = "Prior Month"
	PriorMonthDays  = 30
)

// StandardHorizons returns prior day, prior month and lookback-days-prior.
func StandardHorizons(lookbackDays int) []model.Horizon {
	return []model.Horizon{
		{Label: LabelPriorDay, Offset: 1},
		{Label: LabelPriorMonth, Offset: PriorMonthDays},
		{Label: fmt.Sprintf("%d Days Prior", lookbackDays), Offset: lookbackDays},
	}
}

// MaxOffset returns the largest offset among horizons.
func MaxOffset(horizons []model.Horizon) int {
	m := 0
	for _, h := range horizons {
		if h.Offset > m {
			m = h.Offset
		}
	}
	return m
}

// Snapshots extracts, for every horizon h, the close h sessions before the
// latest one and its change to the latest close. A one-session horizon takes
// its delta from latestReturn, the last entry of the series' returns.
// Every horizon is checked before anything is extracted.
func Snapshots(series model.PriceSeries, latestReturn float64, horizons []model.Horizon) ([]model.Snapshot, error) {
	n := series.Len()
	for _, h := range horizons {
		if h.Offset < 0 || h.Offset+1 > n {
			return nil, fmt.Errorf("%w: %q needs %d observations, %s has %d",
				ErrHorizonOutOfRange, h.Label, h.Offset+1, series.Symbol, n)
		}
	}

	latest := series.Latest()
	out := make([]model.Snapshot, 0, len(horizons))
	for _, h := range horizons {
		ref := series.Observations[n-1-h.Offset]
		delta := PercentChange(ref.Close, latest.Close)
		if h.Offset == 1 {
			delta = latestReturn
		}
		out = append(out, model.Snapshot{
			Label:         h.Label,
			ReferenceDate: ref.Date,
			Price:         ref.Close,
			DeltaPct:      delta,
		})
	}
	return out, nil
}
