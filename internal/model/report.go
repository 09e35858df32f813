package model

import "time"

// Trend is an ordinary least squares line fitted to daily returns,
// with x being the session index starting at 0.
type Trend struct {
	Slope     float64
	Intercept float64
}

// Report is the final output handed to the presentation layer.
type Report struct {
	ID              string
	Query           Query
	BenchmarkName   string
	BenchmarkTicker string
	Name            string // company long name, or the ticker when unknown

	Returns      ReturnSeries
	MeanReturn   float64
	Risk         float64 // population stddev of daily returns
	LatestReturn float64
	Snapshots    []Snapshot
	Excess       *AlignedPair
	Trend        Trend

	Profile         *CompanyProfile
	TargetUpsidePct *float64

	GeneratedAt time.Time
}
