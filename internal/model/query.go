package model

import (
	"fmt"
	"strings"
)

// Lookback window bounds, in days.
const (
	MinLookbackDays = 30
	MaxLookbackDays = 365 * 3
)

// Defaults for a query that names only a ticker.
const (
	DefaultBenchmark    = "S&P500"
	DefaultLookbackDays = 90
)

// Query is one user selection. It is passed by value and never mutated.
type Query struct {
	Ticker       string `yaml:"ticker"`
	Benchmark    string `yaml:"benchmark"`
	LookbackDays int    `yaml:"days"`
}

// Validate checks the ticker and the lookback window.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if q.Benchmark == "" {
		return fmt.Errorf("benchmark is required")
	}
	if q.LookbackDays < MinLookbackDays || q.LookbackDays > MaxLookbackDays {
		return fmt.Errorf("lookback days must be between %d and %d, got %d",
			MinLookbackDays, MaxLookbackDays, q.LookbackDays)
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("%s vs %s (%dd)", q.Ticker, q.Benchmark, q.LookbackDays)
}
