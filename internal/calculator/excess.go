package calculator

import (
	"fmt"

	"StockScreener/internal/model"
)

// Align inner-joins two return series on exact calendar date and summarizes
// the excess performance of ticker over benchmark. Days missing on either
// side are dropped. Entries follow the ticker's order.
func Align(ticker, benchmark model.ReturnSeries) (*model.AlignedPair, error) {
	bench := make(map[int64]float64, len(benchmark.Points))
	for _, p := range benchmark.Points {
		bench[p.Date.Unix()] = p.Pct
	}

	entries := make([]model.AlignedEntry, 0, len(ticker.Points))
	for _, p := range ticker.Points {
		b, ok := bench[p.Date.Unix()]
		if !ok {
			continue
		}
		entries = append(entries, model.AlignedEntry{
			Date:            p.Date,
			TickerReturn:    p.Pct,
			BenchmarkReturn: b,
			ExcessReturn:    p.Pct - b,
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoOverlap, ticker.Symbol, benchmark.Symbol)
	}

	tr := make([]float64, len(entries))
	br := make([]float64, len(entries))
	ex := make([]float64, len(entries))
	for i, e := range entries {
		tr[i] = e.TickerReturn
		br[i] = e.BenchmarkReturn
		ex[i] = e.ExcessReturn
	}

	pair := &model.AlignedPair{
		Ticker:    ticker.Symbol,
		Benchmark: benchmark.Symbol,
		Entries:   entries,
	}
	var err error
	if pair.MeanTicker, err = Mean(tr); err != nil {
		return nil, err
	}
	if pair.RiskTicker, err = PopulationStdDev(tr); err != nil {
		return nil, err
	}
	if pair.MeanBenchmark, err = Mean(br); err != nil {
		return nil, err
	}
	if pair.MeanExcess, err = Mean(ex); err != nil {
		return nil, err
	}
	pair.Verdict = VerdictFor(pair.MeanExcess)
	return pair, nil
}

// VerdictFor maps a mean excess return to a verdict. Zero is not outperformance.
func VerdictFor(meanExcess float64) model.Verdict {
	if meanExcess > 0 {
		return model.Outperformed
	}
	return model.Underperformed
}
