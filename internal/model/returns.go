package model

import "time"

// ReturnPoint is the percentage change of a close versus the previous session.
type ReturnPoint struct {
	Date time.Time
	Pct  float64
}

// ReturnSeries is derived from a PriceSeries and has one entry fewer.
type ReturnSeries struct {
	Symbol string
	Points []ReturnPoint
}

// Values returns the return percentages in order.
func (r ReturnSeries) Values() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Pct
	}
	return out
}

// Verdict tells whether the ticker beat its benchmark.
type Verdict string

const (
	Outperformed   Verdict = "outperformed"
	Underperformed Verdict = "underperformed"
)

// AlignedEntry is one trading day present in both return series.
type AlignedEntry struct {
	Date            time.Time
	TickerReturn    float64
	BenchmarkReturn float64
	ExcessReturn    float64
}

// AlignedPair is the date inner join of a ticker and a benchmark.
type AlignedPair struct {
	Ticker    string
	Benchmark string
	Entries   []AlignedEntry

	MeanTicker    float64
	RiskTicker    float64 // population stddev of ticker returns
	MeanBenchmark float64
	MeanExcess    float64
	Verdict       Verdict
}

// Dates returns the joined dates in order.
func (a *AlignedPair) Dates() []time.Time {
	out := make([]time.Time, len(a.Entries))
	for i, e := range a.Entries {
		out[i] = e.Date
	}
	return out
}

// Horizon names an offset, in sessions, back from the latest observation.
type Horizon struct {
	Label  string
	Offset int
}

// Snapshot is a past close and its percentage distance to the latest close.
type Snapshot struct {
	Label         string
	ReferenceDate time.Time
	Price         float64
	DeltaPct      float64
}
