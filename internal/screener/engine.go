package screener

import (
	"context"
	"fmt"
	"log"
	"time"

	"StockScreener/internal/calculator"
	"StockScreener/internal/collector"
	"StockScreener/internal/index"
	"StockScreener/internal/model"

	"github.com/google/uuid"
)

// Evaluate computes the full report from collected market data.
//
// The ticker series is cut to the lookback window (LookbackDays sessions
// plus the reference session before them). The benchmark is left whole: the
// date join restricts it to the ticker's window.
func Evaluate(q model.Query, bench index.Benchmark, data *model.MarketData) (*model.Report, error) {
	horizons := calculator.StandardHorizons(q.LookbackDays)

	// Step a: clean both series
	tickerSeries, err := calculator.Normalize(q.Ticker, data.TickerBars, calculator.MaxOffset(horizons))
	if err != nil {
		return nil, err
	}
	if tickerSeries, err = calculator.Trailing(tickerSeries, q.LookbackDays); err != nil {
		return nil, err
	}
	benchSeries, err := calculator.Normalize(bench.Ticker, data.BenchmarkBars, 1)
	if err != nil {
		return nil, err
	}

	// Step b: daily returns
	tickerReturns, err := calculator.Returns(tickerSeries)
	if err != nil {
		return nil, err
	}
	benchReturns, err := calculator.Returns(benchSeries)
	if err != nil {
		return nil, err
	}
	latestReturn := tickerReturns.Points[len(tickerReturns.Points)-1].Pct

	// Step c: snapshots
	snaps, err := calculator.Snapshots(tickerSeries, latestReturn, horizons)
	if err != nil {
		return nil, err
	}

	// Step d: summary statistics
	values := tickerReturns.Values()
	mean, err := calculator.Mean(values)
	if err != nil {
		return nil, err
	}
	risk, err := calculator.PopulationStdDev(values)
	if err != nil {
		return nil, err
	}
	trend, err := calculator.Trendline(tickerReturns)
	if err != nil {
		return nil, err
	}

	// Step e: excess performance
	pair, err := calculator.Align(tickerReturns, benchReturns)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Query:           q,
		BenchmarkName:   bench.Name,
		BenchmarkTicker: bench.Ticker,
		Name:            q.Ticker,
		Returns:         tickerReturns,
		MeanReturn:      mean,
		Risk:            risk,
		LatestReturn:    latestReturn,
		Snapshots:       snaps,
		Excess:          pair,
		Trend:           trend,
		Profile:         data.Profile,
		GeneratedAt:     time.Now(),
	}

	// Step f: analyst context
	if p := data.Profile; p != nil {
		report.Name = p.LongName
		if p.HasTargets() && *p.CurrentPrice > 0 {
			upside := calculator.PercentChange(*p.CurrentPrice, *p.TargetMeanPrice)
			report.TargetUpsidePct = &upside
		}
	}

	return report, nil
}

// Screener runs queries end to end.
type Screener struct {
	Collector *collector.Collector
}

// New creates a new Screener.
func New(col *collector.Collector) *Screener {
	return &Screener{Collector: col}
}

// Run validates the query, fetches its data and evaluates it.
func (s *Screener) Run(ctx context.Context, q model.Query) (*model.Report, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}
	bench, err := index.LookupBenchmark(q.Benchmark)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log.Printf("[INFO] run %s: %s", id, q)

	data, err := s.Collector.Collect(ctx, q, bench.Ticker)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	report, err := Evaluate(q, bench, data)
	if err != nil {
		log.Printf("[WARN] run %s: %v", id, err)
		return nil, err
	}
	report.ID = id
	log.Printf("[INFO] run %s: %s %s %s by %.2f%%", id, report.Name, report.Excess.Verdict, bench.Name, report.Excess.MeanExcess)
	return report, nil
}
